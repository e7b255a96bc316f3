package metrics_test

import (
	"strings"
	"testing"
	"time"

	"ratecalc/internal/adapters/out/metrics"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusValidationRecorder(t *testing.T) {
	t.Run("should count outcomes and errors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		recorder, err := metrics.NewPrometheusValidationRecorder("ratecalc", reg)
		require.NoError(t, err)

		ctx := t.Context()
		recorder.RecordValidation(ctx, ports.ChainAddress, validation.Valid())
		recorder.RecordValidation(ctx, ports.ChainAddress, validation.NewResult(
			validation.Error{Field: "street1", Message: "Street address is required", Code: "REQUIRED_FIELD"},
			validation.Error{Field: "city", Message: "City is required", Code: "REQUIRED_FIELD"},
		))
		recorder.RecordValidation(ctx, ports.ChainPackage, validation.NewResult(
			validation.Error{Field: "weight", Message: "Unsupported weight unit", Code: "UNSUPPORTED_WEIGHT_UNIT"},
		))

		expected := `
# HELP ratecalc_validations_total Number of records run through a validation chain
# TYPE ratecalc_validations_total counter
ratecalc_validations_total{chain="address",outcome="invalid"} 1
ratecalc_validations_total{chain="address",outcome="valid"} 1
ratecalc_validations_total{chain="package",outcome="invalid"} 1
# HELP ratecalc_validation_errors_total Number of field errors reported by validation chains
# TYPE ratecalc_validation_errors_total counter
ratecalc_validation_errors_total{chain="address",code="REQUIRED_FIELD",field="city"} 1
ratecalc_validation_errors_total{chain="address",code="REQUIRED_FIELD",field="street1"} 1
ratecalc_validation_errors_total{chain="package",code="UNSUPPORTED_WEIGHT_UNIT",field="weight"} 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
			"ratecalc_validations_total", "ratecalc_validation_errors_total"))
	})

	t.Run("should fail on duplicate registration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := metrics.NewPrometheusValidationRecorder("ratecalc", reg)
		require.NoError(t, err)

		_, err = metrics.NewPrometheusValidationRecorder("ratecalc", reg)
		require.Error(t, err)
	})
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTPMetrics("ratecalc", reg)
	require.NoError(t, err)

	m.ObserveRequest("POST", "/api/v1/packages/validate", 200, 3*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/packages/validate", 200, time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/packages/validate", 400, time.Millisecond)

	expected := `
# HELP ratecalc_http_requests_total Total number of HTTP requests
# TYPE ratecalc_http_requests_total counter
ratecalc_http_requests_total{method="POST",path="/api/v1/packages/validate",status="200"} 2
ratecalc_http_requests_total{method="POST",path="/api/v1/packages/validate",status="400"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ratecalc_http_requests_total"))

	count, err := testutil.GatherAndCount(reg, "ratecalc_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
