package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getMetricValue retrieves the current value of a gauge or counter child of
// metric for the given set of labels. Returns an error if the metric cannot
// be parsed.
func getMetricValue(metric prometheus.Collector, labels map[string]string) (float64, error) {
	var m prometheus.Metric
	switch v := metric.(type) {
	case *prometheus.GaugeVec:
		m = v.With(labels)
	case *prometheus.CounterVec:
		m = v.With(labels)
	case prometheus.Metric:
		m = v
	}

	pb := &dto.Metric{}
	if err := m.Write(pb); err != nil {
		return 0, err
	}

	switch {
	case pb.Gauge != nil:
		return pb.Gauge.GetValue(), nil
	case pb.Counter != nil:
		return pb.Counter.GetValue(), nil
	}
	return 0, nil
}

// getHistogramCount returns how many observations a histogram has seen.
func getHistogramCount(h prometheus.Histogram) (uint64, error) {
	pb := &dto.Metric{}
	if err := h.Write(pb); err != nil {
		return 0, err
	}
	return pb.GetHistogram().GetSampleCount(), nil
}
