package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking outcome labels
const (
	BookingCreated  = "created"
	BookingConflict = "conflict"
	BookingRejected = "rejected"
	BookingError    = "error"
)

// Metrics набор prometheus-метрик сервиса.
// Каждый экземпляр владеет собственным registry, поэтому New можно вызывать
// несколько раз (например, в тестах).
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingAttempts     *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBOpenConns     prometheus.Gauge
	DBInUseConns    prometheus.Gauge
}

// New регистрирует метрики сервиса serviceName
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_attempts_total",
			Help:        "Appointment booking attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"result"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingAttempts,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveBooking учитывает результат попытки бронирования.
// Безопасен для nil-получателя (метрики выключены).
func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.BookingAttempts.WithLabelValues(result).Inc()
}
