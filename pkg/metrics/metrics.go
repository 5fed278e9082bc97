package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	QuotesTotal        *prometheus.CounterVec
	CancellationsTotal *prometheus.CounterVec
	CacheRequestsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),
		DBQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Total number of database queries.",
			},
			[]string{"service", "operation", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"service", "operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Number of established connections.",
			},
			[]string{"service"},
		),
		DBInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_in_use_connections",
				Help: "Number of connections currently in use.",
			},
			[]string{"service"},
		),
		DBIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Number of idle connections.",
			},
			[]string{"service"},
		),
		DBWaitCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_wait_count",
				Help: "Total number of connections waited for.",
			},
			[]string{"service"},
		),
		QuotesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_quotes_total",
				Help: "Price quotes computed by service tier and size band.",
			},
			[]string{"service", "tier", "size"},
		),
		CancellationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cancellations_total",
				Help: "Cancellations by applied fee rate.",
			},
			[]string{"service", "fee_rate"},
		),
		CacheRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_requests_total",
				Help: "Report cache lookups by result.",
			},
			[]string{"service", "result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.QuotesTotal,
		m.CancellationsTotal,
		m.CacheRequestsTotal,
	)

	return m
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(service, method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(service, method, route).Observe(duration.Seconds())
}

// ObserveDB записывает результат запроса к БД
func (m *Metrics) ObserveDB(service, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// ServiceMetrics метрики с зафиксированным именем сервиса.
// Методы безопасно вызывать на nil.
type ServiceMetrics struct {
	m       *Metrics
	service string
}

// ForService возвращает метрики для указанного сервиса
func (m *Metrics) ForService(service string) *ServiceMetrics {
	if m == nil {
		return nil
	}
	return &ServiceMetrics{m: m, service: service}
}

// ObserveQuote учитывает рассчитанную цену
func (s *ServiceMetrics) ObserveQuote(tier, size string) {
	if s == nil {
		return
	}
	s.m.QuotesTotal.WithLabelValues(s.service, tier, size).Inc()
}

// ObserveCancellation учитывает отмену с применённой ставкой штрафа
func (s *ServiceMetrics) ObserveCancellation(feeRate float64) {
	if s == nil {
		return
	}
	s.m.CancellationsTotal.WithLabelValues(s.service, strconv.FormatFloat(feeRate, 'f', -1, 64)).Inc()
}

// ObserveCache учитывает обращение к кэшу отчётов
func (s *ServiceMetrics) ObserveCache(hit bool) {
	if s == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	s.m.CacheRequestsTotal.WithLabelValues(s.service, result).Inc()
}
