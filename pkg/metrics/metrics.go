package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP запросов по методу, пути и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность обработки HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// AppointmentsTotal количество созданных записей по статусу (confirmed/waitlist)
	AppointmentsTotal *prometheus.CounterVec

	// AppointmentsDeleted количество удалённых записей (включая clear-all)
	AppointmentsDeleted prometheus.Counter
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of created appointments by status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		AppointmentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_deleted_total",
			Help:        "Total number of deleted appointments",
			ConstLabels: constLabels,
		}),
	}
}

// IncAppointmentCreated инкрементирует счетчик созданных записей по статусу
func (m *Metrics) IncAppointmentCreated(status string) {
	m.AppointmentsTotal.WithLabelValues(status).Inc()
}

// IncAppointmentsDeleted инкрементирует счетчик удалённых записей на count
func (m *Metrics) IncAppointmentsDeleted(count int) {
	m.AppointmentsDeleted.Add(float64(count))
}
