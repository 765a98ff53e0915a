package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	RecordMutationsTotal    *prometheus.CounterVec
	ValidationFailuresTotal *prometheus.CounterVec
	RecordsStored           *prometheus.GaugeVec
}

var HTTP = HTTPMetrics{
	RequestsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_services_http_requests_total",
			Help: "Total number of HTTP requests received.",
		},
		[]string{"method", "path", "code"},
	),
	RequestDuration: promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_services_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "code"},
	),
}

var DB = DBMetrics{
	QueryDuration: promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_services_db_query_duration_seconds",
			Help:    "Histogram of database query latencies.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query_name", "status"},
	),
}

var Business = BusinessMetrics{
	RecordMutationsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_services_record_mutations_total",
			Help: "Total number of records created, modified or deleted.",
		},
		[]string{"resource", "action"},
	),
	ValidationFailuresTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_services_validation_failures_total",
			Help: "Total number of business validation failures, by field.",
		},
		[]string{"resource", "field"},
	),
	RecordsStored: promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bank_services_records_stored",
			Help: "Number of records currently held by each store.",
		},
		[]string{"resource"},
	),
}

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordMutation(resource, action string) {
	Business.RecordMutationsTotal.WithLabelValues(resource, action).Inc()
}

func RecordValidationFailure(resource, field string) {
	Business.ValidationFailuresTotal.WithLabelValues(resource, field).Inc()
}

func SetRecordsStored(resource string, count int) {
	Business.RecordsStored.WithLabelValues(resource).Set(float64(count))
}
