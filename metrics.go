package siteshell

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsSubsystem = "siteshell"

// shellMetrics holds the app's own collectors. Request metrics come from
// echoprometheus. A nil *shellMetrics records nothing.
type shellMetrics struct {
	pageCache *prometheus.CounterVec
}

func newShellMetrics(reg *prometheus.Registry) (*shellMetrics, error) {
	m := &shellMetrics{
		pageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: metricsSubsystem,
			Name:      "page_cache_requests_total",
			Help:      "Rendered page lookups by cache result.",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{
		m.pageCache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *shellMetrics) cacheResult(result string) {
	if m == nil {
		return
	}
	m.pageCache.WithLabelValues(result).Inc()
}

func (a *App) metricsMiddleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: a.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

func (a *App) metricsHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	})
}
