package cmd_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ratecalc/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot(t *testing.T) {
	configs := cmd.Config{HTTPPort: 8080, AppEnv: "dev", LogLevel: "info", MetricsNamespace: "ratecalc"}
	logger := cmd.NewLogger(io.Discard, configs.AppEnv, configs.LogLevel)

	app, err := cmd.NewCompositionRoot(configs, logger)
	require.NoError(t, err)

	e, err := app.CreateHTTPServer()
	require.NoError(t, err)

	t.Run("should serve health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should record validations on the shared registry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/packages/validate", strings.NewReader(`{"dimensions":{"length":1}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Contains(t, rec.Body.String(), `ratecalc_validations_total{chain="package",outcome="invalid"} 1`)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
