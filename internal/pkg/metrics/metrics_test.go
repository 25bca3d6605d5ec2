package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/offers/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/offers/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/offers/:id", "200")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nairaxchange_http_requests_total")
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.TradesCreated.Inc()
	m.TradeTransitions.WithLabelValues("completed").Inc()
	m.OffersCreated.WithLabelValues("sell").Inc()
	m.ObserveRelease(decimal.RequireFromString("125.5"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TradesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TradeTransitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OffersCreated.WithLabelValues("sell")))
	assert.Equal(t, 125.5, testutil.ToFloat64(m.TradeVolumeUSDT))
}
