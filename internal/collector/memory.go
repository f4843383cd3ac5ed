package collector

import (
	"github.com/hhvm-exporter/hhvm-exporter/internal/scraper"
)

// /memory.json keys.
const (
	memoryKeySuccess   = "Success"
	memoryKeyMemory    = "Memory"
	memoryKeyStats     = "Process Stats (bytes)"
	memoryKeyVmSize    = "VmSize"
	memoryKeyBreakdown = "Breakdown"
	memoryKeyStrings   = "Static Strings"
	memoryKeyDetails   = "Details"
	memoryKeyCount     = "Count"
	memoryKeyBytes     = "Bytes"
)

// MapMemory maps a /memory.json document.
//
// Process stats that are missing produce no sample (not NaN).
// The static strings pair is emitted only when the "Static Strings" section
// exists; inside it, missing figures become NaN.
func MapMemory(res scraper.Result) []Sample {
	if !res.Present() {
		return nil
	}
	doc := res.Doc

	samples := []Sample{
		sample(memorySuccess, doc.NumberOr(memoryKeySuccess, 0)),
	}

	mem, _ := doc.Section(memoryKeyMemory)
	stats, _ := mem.Section(memoryKeyStats)

	if v, ok := stats.Number(memoryKeyVmSize); ok {
		samples = append(samples, sample(memorySize, v))
	}
	for _, seg := range memorySegments {
		if v, ok := stats.Number(seg.key); ok {
			samples = append(samples, sample(memorySegment, v, seg.segment))
		}
	}

	breakdown, _ := mem.Section(memoryKeyBreakdown)
	if strs, ok := breakdown.Section(memoryKeyStrings); ok {
		details, _ := strs.Section(memoryKeyDetails)
		samples = append(samples,
			sample(stringsCount, details.NumberOrNaN(memoryKeyCount)),
			sample(stringsBytes, strs.NumberOrNaN(memoryKeyBytes)),
		)
	}
	return samples
}
