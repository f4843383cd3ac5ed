package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sample is one value of a catalog family. LabelValues follow Family.Labels
// in order.
type Sample struct {
	Family      *Family
	LabelValues []string
	Value       float64
}

func sample(f *Family, value float64, labelValues ...string) Sample {
	return Sample{Family: f, LabelValues: labelValues, Value: value}
}

// Metric converts s into a constant prometheus.Metric.
func (s Sample) Metric() (prometheus.Metric, error) {
	return prometheus.NewConstMetric(s.Family.Desc(), s.Family.Type, s.Value, s.LabelValues...)
}
