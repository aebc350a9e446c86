package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAdmissionDeniedTotal returns a counter for requests rejected by the
// admission limiter.
func NewAdmissionDeniedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "admission_denied_total",
		Help: "Total number of HTTP requests rejected by the admission limiter",
	})
}

// NewTrackedKeys returns a gauge reporting how many client keys currently
// hold admission state.
func NewTrackedKeys(count func() float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "admission_tracked_keys",
		Help: "Number of client keys with recorded admissions",
	}, count)
}
