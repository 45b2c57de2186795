package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg *prometheus.Registry

	LiveViews *prometheus.GaugeVec
	Events    *prometheus.CounterVec
	Dropped   *prometheus.CounterVec
	Redirects *prometheus.CounterVec
	LazyLoads prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		LiveViews: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "landing",
			Name:      "live_views",
			Help:      "Page views with an open event stream.",
		}, []string{"page"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "view_events_total",
			Help:      "Browser events delivered to a live view.",
		}, []string{"kind"}),
		Dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "view_events_dropped_total",
			Help:      "Browser events dropped before reaching a view.",
		}, []string{"reason"}),
		Redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "redirects_total",
			Help:      "Outbound redirects handed to the browser.",
		}, []string{"target"}),
		LazyLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "lazy_images_revealed_total",
			Help:      "Deferred images whose source was released to the browser.",
		}),
	}
	m.reg.MustRegister(m.LiveViews, m.Events, m.Dropped, m.Redirects, m.LazyLoads)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
