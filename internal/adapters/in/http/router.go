package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RequestObserver receives the outcome of every served request.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// RouterConfig holds the collaborators of the echo instance besides the handlers.
// Observer may be nil.
type RouterConfig struct {
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Observer RequestObserver
}

// NewRouter builds the echo instance serving the API, health, metrics and docs.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	openAPIRouter, err := NewOpenAPIRouter()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(accessLog(cfg.Logger))
	if cfg.Observer != nil {
		e.Use(observe(cfg.Observer))
	}

	e.GET("/health", server.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", requestValidator(openAPIRouter))
	api.POST("/addresses/validate", server.ValidateAddress)
	api.POST("/packages/validate", server.ValidatePackage)
	api.POST("/packages/dimensional-weight", server.CalculateDimensionalWeight)
	api.POST("/shipments/review", server.ReviewShipment)

	return e, nil
}
