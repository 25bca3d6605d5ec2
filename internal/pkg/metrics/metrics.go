package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics holds the exchange's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	TradesCreated     prometheus.Counter
	TradeTransitions  *prometheus.CounterVec
	TradeVolumeUSDT   prometheus.Counter
	TradesExpired     prometheus.Counter
	OffersCreated     *prometheus.CounterVec
	Withdrawals       *prometheus.CounterVec
	EventPublishFails *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TradesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nairaxchange_trades_created_total",
			Help: "Trades opened against offers.",
		}),
		TradeTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nairaxchange_trade_transitions_total",
			Help: "Trade status transitions by target status.",
		}, []string{"status"}),
		TradeVolumeUSDT: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nairaxchange_trade_volume_usdt_total",
			Help: "USDT released to buyers on completed trades.",
		}),
		TradesExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nairaxchange_trades_expired_total",
			Help: "Trades expired by the sweeper.",
		}),
		OffersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nairaxchange_offers_created_total",
			Help: "Offers posted by type.",
		}, []string{"type"}),
		Withdrawals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nairaxchange_withdrawals_total",
			Help: "Withdrawal requests by currency and status.",
		}, []string{"currency", "status"}),
		EventPublishFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nairaxchange_event_publish_failures_total",
			Help: "NATS publish failures by subject.",
		}, []string{"subject"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nairaxchange_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nairaxchange_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.TradesCreated,
		m.TradeTransitions,
		m.TradeVolumeUSDT,
		m.TradesExpired,
		m.OffersCreated,
		m.Withdrawals,
		m.EventPublishFails,
		m.HTTPRequests,
		m.HTTPDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latency per route
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveRelease adds a completed trade amount to the volume counter
func (m *Metrics) ObserveRelease(amount decimal.Decimal) {
	f, _ := amount.Float64()
	m.TradeVolumeUSDT.Add(f)
}
