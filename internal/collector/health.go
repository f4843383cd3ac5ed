package collector

import (
	"github.com/hhvm-exporter/hhvm-exporter/internal/scraper"
)

// MapHealth maps a /check-health document. Missing keys become NaN, never 0.
// An absent result maps to no samples.
func MapHealth(res scraper.Result) []Sample {
	if !res.Present() {
		return nil
	}
	doc := res.Doc

	samples := make([]Sample, 0, len(healthFields)+len(tcBlocks))
	for _, f := range healthFields {
		samples = append(samples, sample(f.family, doc.NumberOrNaN(f.key)))
	}
	for _, b := range tcBlocks {
		samples = append(samples, sample(tcUsedBytes, doc.NumberOrNaN(b.key), b.block))
	}
	return samples
}
