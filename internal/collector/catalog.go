package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hhvm"

// Family is one entry of the metric catalog. Names and label sets are what
// dashboards and alerts key on; renaming one is a breaking change.
type Family struct {
	Name   string
	Help   string
	Type   prometheus.ValueType
	Labels []string

	desc *prometheus.Desc
}

// Desc returns the family's descriptor.
func (f *Family) Desc() *prometheus.Desc {
	return f.desc
}

func newFamily(name, help string, typ prometheus.ValueType, labels ...string) *Family {
	fqName := prometheus.BuildFQName(namespace, "", name)
	return &Family{
		Name:   fqName,
		Help:   help,
		Type:   typ,
		Labels: labels,
		desc:   prometheus.NewDesc(fqName, help, labels, nil),
	}
}

// healthField binds a /check-health key to its gauge.
type healthField struct {
	key    string
	family *Family
}

// Catalog, /check-health.
var (
	healthFields = []healthField{
		{"load", newFamily("load", "Number of threads actively servicing requests", prometheus.GaugeValue)},
		{"queued", newFamily("queued", "Number of queued jobs", prometheus.GaugeValue)},
		{"hhbc-roarena-capac", newFamily("hhbc_ro_arena_capacity_bytes", "Read-only arena capacity, used only in RepoAuth mode", prometheus.GaugeValue)},
		{"rds", newFamily("rds_used_bytes", "RDS total bytes usage", prometheus.GaugeValue)},
		{"rds-local", newFamily("rds_local_bytes", "RDS local region bytes usage", prometheus.GaugeValue)},
		{"rds-persistent", newFamily("rds_persistent_bytes", "RDS persistent region bytes usage", prometheus.GaugeValue)},
		{"units", newFamily("units_total", "Number of loaded units", prometheus.GaugeValue)},
		{"funcs", newFamily("funcs_total", "Number of functions created", prometheus.GaugeValue)},
	}

	tcUsedBytes = newFamily("tc_used_bytes", "Translation cache usage", prometheus.GaugeValue, "block")

	// tcBlocks maps the block label to its /check-health key; "main" is the
	// aggregate size.
	tcBlocks = []struct{ block, key string }{
		{"main", "tc-size"},
		{"hot", "tc-hotsize"},
		{"prof", "tc-profsize"},
		{"cold", "tc-coldsize"},
		{"frozen", "tc-frozensize"},
	}
)

// Catalog, /memory.json.
var (
	memorySuccess  = newFamily("memory_success", "HHVM was able to fetch its memory statistics", prometheus.GaugeValue)
	memorySize     = newFamily("process_memory_size_bytes", "Virtual memory size of HHVM process", prometheus.GaugeValue)
	memorySegment  = newFamily("process_memory_bytes", "Virtual memory segment size", prometheus.GaugeValue, "segment")
	stringsCount   = newFamily("memory_strings_count", "Static strings allocated", prometheus.GaugeValue)
	stringsBytes   = newFamily("memory_strings_bytes", "Static strings total bytes used", prometheus.GaugeValue)
	memorySegments = []struct{ segment, key string }{
		{"rss", "VmRss"},
		{"shared", "Shared"},
		{"text", "Text(Code)"},
		{"data", "Data"},
	}
)

// Catalog, /status.json.
var (
	buildInfo = newFamily("build_info", "HHVM build information", prometheus.GaugeValue, "compiler", "build")
	startup   = newFamily("startup", "HHVM process start time", prometheus.CounterValue)
)

// Catalog, scrape-level.
var (
	up = newFamily("up", "HHVM admin interface is up", prometheus.GaugeValue)
)

const (
	durationName = "hhvm_scrape_duration_seconds"
	durationHelp = "HHVM scrape duration"
)

// Families returns every family the collector can emit from the admin
// documents plus hhvm_up. The duration summary is not part of the catalog.
func Families() []*Family {
	fams := make([]*Family, 0, len(healthFields)+10)
	for _, f := range healthFields {
		fams = append(fams, f.family)
	}
	return append(fams,
		tcUsedBytes,
		memorySuccess, memorySize, memorySegment, stringsCount, stringsBytes,
		buildInfo, startup,
		up,
	)
}
