package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BookingOutcomes        *prometheus.CounterVec
	DuplicateGuardErrors   *prometheus.CounterVec
	ConfirmationsEnqueued  *prometheus.CounterVec
	ConfirmationDeliveries *prometheus.CounterVec
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"database"}),
		BookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		DuplicateGuardErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_duplicate_guard_errors_total",
			Help:        "Errors swallowed by the duplicate booking guard",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		ConfirmationsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_confirmations_enqueued_total",
			Help:        "Confirmation tasks handed to the queue",
			ConstLabels: constLabels,
		}, []string{"status"}),
		ConfirmationDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_confirmation_deliveries_total",
			Help:        "Confirmation e-mails processed by the worker",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.DBQueryDuration,
			m.DBOpenConnections,
			m.DBInUseConnections,
			m.DBIdleConnections,
			m.DBWaitCount,
			m.BookingOutcomes,
			m.DuplicateGuardErrors,
			m.ConfirmationsEnqueued,
			m.ConfirmationDeliveries,
		)
	}

	return m
}

// ObserveHTTPRequest записывает метрики одного HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// IncBookingOutcome считает результат обработки заявки (created, duplicate, conflict, invalid, error)
func (m *Metrics) IncBookingOutcome(outcome string) {
	if m == nil {
		return
	}
	m.BookingOutcomes.WithLabelValues(outcome).Inc()
}

// IncDuplicateGuardError считает проглоченную ошибку проверки дубликатов
func (m *Metrics) IncDuplicateGuardError(operation string) {
	if m == nil {
		return
	}
	m.DuplicateGuardErrors.WithLabelValues(operation).Inc()
}

// IncConfirmationEnqueued считает постановку задачи подтверждения в очередь
func (m *Metrics) IncConfirmationEnqueued(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ConfirmationsEnqueued.WithLabelValues(status).Inc()
}

// IncConfirmationDelivery считает отправку письма воркером
func (m *Metrics) IncConfirmationDelivery(err error) {
	if m == nil {
		return
	}
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.ConfirmationDeliveries.WithLabelValues(status).Inc()
}
