package export

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts export jobs by operation and outcome.
type Metrics struct {
	jobs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the export collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		jobs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rasid",
			Subsystem: "export",
			Name:      "jobs_total",
			Help:      "Receipt export jobs by operation, format and outcome.",
		}, []string{"op", "format", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rasid",
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Time from request to finished artifact.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5},
		}, []string{"op"}),
	}
}

func (m *Metrics) observe(op Op, format Format, err error, started time.Time) {
	if m == nil {
		return
	}
	m.jobs.WithLabelValues(string(op), string(format), outcome(err)).Inc()
	if err == nil {
		m.duration.WithLabelValues(string(op)).Observe(time.Since(started).Seconds())
	}
}

func outcome(err error) string {
	var exportErr *Error
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInProgress):
		return "rejected"
	case errors.As(err, &exportErr):
		return string(exportErr.Kind)
	default:
		return "error"
	}
}
