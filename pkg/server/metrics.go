package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for view computations.
type Metrics struct {
	registry *prometheus.Registry

	// Views computed, by view and data source ("sample" or "upload")
	Renders *prometheus.CounterVec

	// Failed computations, by view and error code
	Errors *prometheus.CounterVec

	RenderLatency *prometheus.HistogramVec
}

// NewMetrics creates the view metrics and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "malaria_view_renders_total",
			Help: "Total views computed by view and data source",
		}, []string{"view", "source"}),

		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "malaria_view_errors_total",
			Help: "Total failed view computations by view and error code",
		}, []string{"view", "kind"}),

		RenderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "malaria_view_render_duration_seconds",
			Help:    "Duration of loading, joining, aggregating and describing a view",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"view"}),
	}
}

// ObserveRender records a successful view computation.
func (m *Metrics) ObserveRender(view, source string, d time.Duration) {
	if m != nil {
		m.Renders.WithLabelValues(view, source).Inc()
		m.RenderLatency.WithLabelValues(view).Observe(d.Seconds())
	}
}

// IncrementError records a failed view computation.
func (m *Metrics) IncrementError(view, kind string) {
	if m != nil {
		m.Errors.WithLabelValues(view, kind).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
