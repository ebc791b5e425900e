// Package metrics exposes Prometheus metrics for the map service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"kuttyport/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the map and HTTP metrics and provides helpers to wire
// them into Echo.
type Collector struct {
	gatherer prometheus.Gatherer

	Renders         *prometheus.CounterVec
	MarkersRendered prometheus.Histogram
	SkippedPoints   *prometheus.CounterVec
	Activations     *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDurations   *prometheus.HistogramVec
}

var _ service.MapMetrics = (*Collector)(nil)

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	renders, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapview_renders_total",
		Help: "Number of rendered map views, labeled by source.",
	}, []string{"source"}), "mapview_renders_total")
	if err != nil {
		return nil, err
	}

	markers, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mapview_markers_rendered",
		Help:    "Location markers per rendered view.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	}), "mapview_markers_rendered")
	if err != nil {
		return nil, err
	}

	skipped, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapview_skipped_points_total",
		Help: "Non-finite input points left out of rendered views, labeled by kind.",
	}, []string{"kind"}), "mapview_skipped_points_total")
	if err != nil {
		return nil, err
	}

	activations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mapview_activations_total",
		Help: "Marker activations, labeled by result.",
	}, []string{"result"}), "mapview_activations_total")
	if err != nil {
		return nil, err
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		Renders:         renders,
		MarkersRendered: markers,
		SkippedPoints:   skipped,
		Activations:     activations,
		HTTPRequests:    requests,
		HTTPDurations:   durations,
	}, nil
}

// ObserveRender implements service.MapMetrics.
func (c *Collector) ObserveRender(source string, markers int, skipped map[string]int) {
	if c == nil {
		return
	}
	c.Renders.WithLabelValues(source).Inc()
	c.MarkersRendered.Observe(float64(markers))
	for kind, n := range skipped {
		c.SkippedPoints.WithLabelValues(kind).Add(float64(n))
	}
}

// ObserveActivation implements service.MapMetrics.
func (c *Collector) ObserveActivation(result string) {
	if c == nil {
		return
	}
	c.Activations.WithLabelValues(result).Inc()
}

// EchoMiddleware records request counts and durations. Routes are labeled by
// their pattern so that ids do not explode label cardinality.
func (c *Collector) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else if appStatus, ok := statusFromError(err); ok {
					status = appStatus
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method

			c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// statusFromError reads the HTTP code of application errors.
func statusFromError(err error) (int, bool) {
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode(), true
	}

	return 0, false
}

// register adds the collector to reg, reusing an identical collector that is
// already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}

			return collector, errors.Errorf("collector %s already registered with incompatible type", name)
		}

		return collector, errors.Wrapf(err, "failed to register %s", name)
	}

	return collector, nil
}
