// Package metrics exposes validation and HTTP traffic counters to Prometheus.
package metrics

import (
	"context"
	"strconv"
	"time"

	"ratecalc/internal/core/domain/validation"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
)

// PrometheusValidationRecorder implements ports.ValidationRecorder.
type PrometheusValidationRecorder struct {
	validations *prometheus.CounterVec
	errors      *prometheus.CounterVec
}

// NewPrometheusValidationRecorder creates the recorder and registers its collectors on reg.
func NewPrometheusValidationRecorder(namespace string, reg prometheus.Registerer) (*PrometheusValidationRecorder, error) {
	r := &PrometheusValidationRecorder{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Number of records run through a validation chain",
			},
			[]string{"chain", "outcome"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Number of field errors reported by validation chains",
			},
			[]string{"chain", "field", "code"},
		),
	}

	for _, c := range []prometheus.Collector{r.validations, r.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *PrometheusValidationRecorder) RecordValidation(_ context.Context, chain string, result validation.Result) {
	outcome := outcomeValid
	if !result.IsValid {
		outcome = outcomeInvalid
	}
	r.validations.WithLabelValues(chain, outcome).Inc()

	for _, e := range result.Errors {
		r.errors.WithLabelValues(chain, e.Field, e.Code).Inc()
	}
}

// HTTPMetrics counts and times served HTTP requests.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewHTTPMetrics(namespace string, reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path", "status"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestsTotal, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveRequest records one served request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (m *HTTPMetrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestsTotal.WithLabelValues(method, path, code).Inc()
	m.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}
