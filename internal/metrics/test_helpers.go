package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// ReadGauge returns the current value of a Gauge.
// Used by tests in this and other packages to assert on recorded metrics.
func ReadGauge(g prometheus.Gauge) (float64, error) {
	pb := &dto.Metric{}
	if err := g.Write(pb); err != nil {
		return 0, err
	}
	return pb.GetGauge().GetValue(), nil
}

// ReadCounter returns the current value of a Counter.
func ReadCounter(c prometheus.Counter) (float64, error) {
	pb := &dto.Metric{}
	if err := c.Write(pb); err != nil {
		return 0, err
	}
	return pb.GetCounter().GetValue(), nil
}

// ReadCounterVec returns the current value of the counter in vec identified by labels.
func ReadCounterVec(vec *prometheus.CounterVec, labels map[string]string) (float64, error) {
	c, err := vec.GetMetricWith(labels)
	if err != nil {
		return 0, err
	}
	return ReadCounter(c)
}
