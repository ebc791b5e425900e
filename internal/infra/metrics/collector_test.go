package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	require.NoError(t, err)

	return collector, reg
}

func TestCollector_ObserveRender(t *testing.T) {
	collector, reg := newTestCollector(t)

	collector.ObserveRender("snapshot", 3, map[string]int{"location": 2, "route": 1})
	collector.ObserveRender("preview", 0, nil)

	assert.InDelta(t, 1, testutil.ToFloat64(collector.Renders.WithLabelValues("snapshot")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.Renders.WithLabelValues("preview")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(collector.SkippedPoints.WithLabelValues("location")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.SkippedPoints.WithLabelValues("route")), 0)

	count, err := testutil.GatherAndCount(reg, "mapview_markers_rendered")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCollector_ObserveActivation(t *testing.T) {
	collector, _ := newTestCollector(t)

	collector.ObserveActivation(service.ActivationDispatched)
	collector.ObserveActivation(service.ActivationDispatched)
	collector.ObserveActivation(service.ActivationMissed)

	assert.InDelta(t, 2, testutil.ToFloat64(collector.Activations.WithLabelValues(service.ActivationDispatched)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.Activations.WithLabelValues(service.ActivationMissed)), 0)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var collector *Collector

	assert.NotPanics(t, func() {
		collector.ObserveRender("snapshot", 1, nil)
		collector.ObserveActivation(service.ActivationFailed)
	})
}

func TestNewCollector_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.ObserveActivation(service.ActivationDispatched)
	assert.InDelta(t, 1, testutil.ToFloat64(second.Activations.WithLabelValues(service.ActivationDispatched)), 0)
}

func TestCollector_EchoMiddleware(t *testing.T) {
	collector, _ := newTestCollector(t)

	e := echo.New()
	e.Use(collector.EchoMiddleware())
	e.GET("/deliveries/:id/map", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrSnapshotNotFound
		}

		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	for _, path := range []string{"/deliveries/DLV-1/map", "/deliveries/DLV-2/map", "/deliveries/missing/map", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues(http.MethodGet, "/deliveries/:id/map", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues(http.MethodGet, "/deliveries/:id/map", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "418")), 0)
}

func TestCollector_Handler(t *testing.T) {
	collector, _ := newTestCollector(t)
	collector.ObserveRender("cli", 2, nil)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `mapview_renders_total{source="cli"} 1`))
}
