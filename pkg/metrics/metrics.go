package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках компоненты получают nil
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	collaboratorRequests *prometheus.CounterVec
	snapshotFailOpen     *prometheus.CounterVec
	breakerState         *prometheus.GaugeVec

	slotsGenerated  *prometheus.HistogramVec
	minDateScanDays *prometheus.HistogramVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registerer (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		collaboratorRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "collaborator_requests_total",
			Help: "Requests to the marketplace collaborator API by outcome",
		}, []string{"service", "endpoint", "outcome"}),

		snapshotFailOpen: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "snapshot_fail_open_total",
			Help: "Snapshot parts replaced by permissive defaults after a failed fetch",
		}, []string{"service", "source"}),

		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		}, []string{"service", "name"}),

		slotsGenerated: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduling_slots_generated",
			Help:    "Number of slots generated per request",
			Buckets: []float64{0, 1, 2, 4, 8, 12, 16, 24, 48},
		}, []string{"service"}),

		minDateScanDays: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduling_min_date_scan_days",
			Help:    "Days scanned before the earliest bookable date was found",
			Buckets: []float64{0, 1, 2, 3, 7, 14, 30, 60, 120},
		}, []string{"service"}),
	}
}

// ServiceName возвращает имя сервиса, с которым регистрировались метрики
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(state string, value int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, state).Set(float64(value))
}

// IncCollaboratorRequest фиксирует обращение к внешнему API
func (m *Metrics) IncCollaboratorRequest(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.collaboratorRequests.WithLabelValues(m.serviceName, endpoint, outcome).Inc()
}

// IncSnapshotFailOpen фиксирует подмену части снапшота значениями по умолчанию
func (m *Metrics) IncSnapshotFailOpen(source string) {
	if m == nil {
		return
	}
	m.snapshotFailOpen.WithLabelValues(m.serviceName, source).Inc()
}

// SetBreakerState фиксирует состояние circuit breaker
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.breakerState.WithLabelValues(m.serviceName, name).Set(float64(state))
}

// ObserveSlotsGenerated фиксирует количество сгенерированных слотов
func (m *Metrics) ObserveSlotsGenerated(count int) {
	if m == nil {
		return
	}
	m.slotsGenerated.WithLabelValues(m.serviceName).Observe(float64(count))
}

// ObserveMinDateScan фиксирует глубину поиска ближайшей даты
func (m *Metrics) ObserveMinDateScan(days int) {
	if m == nil {
		return
	}
	m.minDateScanDays.WithLabelValues(m.serviceName).Observe(float64(days))
}
