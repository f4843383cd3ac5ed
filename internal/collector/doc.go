// Package collector turns HHVM admin documents into Prometheus samples.
//
// The metric catalog (catalog.go) is a read-only table built at init. Three
// mappers consume one scraper.Result each:
//   - MapHealth: /check-health scalars and the tc_used_bytes{block} family;
//     missing keys are NaN
//   - MapMemory: /memory.json success flag, process memory and static strings
//   - MapStatus: /status.json build info and process start time
//
// Collector implements prometheus.Collector: every Collect fetches all three
// documents concurrently, maps them, derives hhvm_up and records
// hhvm_scrape_duration_seconds.
package collector
