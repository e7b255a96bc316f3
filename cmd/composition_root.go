package cmd

import (
	"log/slog"

	httpadapter "ratecalc/internal/adapters/in/http"
	"ratecalc/internal/adapters/out/metrics"
	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/services"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/domain/validators"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the long-lived collaborators of the service. Chains are
// built once and shared by every request.
type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	registry    *prometheus.Registry
	recorder    *metrics.PrometheusValidationRecorder
	httpMetrics *metrics.HTTPMetrics

	addressChain validation.Chain[shipment.Address]
	packageChain validation.Chain[shipment.Package]
	optionsChain validation.Chain[shipment.ShippingOptions]
	calculator   services.DimensionalWeightCalculator
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	recorder, err := metrics.NewPrometheusValidationRecorder(configs.MetricsNamespace, registry)
	if err != nil {
		return nil, err
	}
	httpMetrics, err := metrics.NewHTTPMetrics(configs.MetricsNamespace, registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:      configs,
		logger:       logger,
		registry:     registry,
		recorder:     recorder,
		httpMetrics:  httpMetrics,
		addressChain: validators.NewAddressValidationChain(),
		packageChain: validators.NewPackageValidationChain(),
		optionsChain: validators.NewShippingOptionsValidationChain(),
		calculator:   services.NewDimensionalWeightCalculator(),
	}, nil
}

func (c *CompositionRoot) CreateValidateAddressQueryHandler() queries.ValidateAddressQueryHandler {
	return queries.NewValidateAddressQueryHandler(c.addressChain, c.recorder)
}

func (c *CompositionRoot) CreateValidatePackageQueryHandler() queries.ValidatePackageQueryHandler {
	return queries.NewValidatePackageQueryHandler(c.packageChain, c.recorder)
}

func (c *CompositionRoot) CreateCalculateDimensionalWeightQueryHandler() queries.CalculateDimensionalWeightQueryHandler {
	return queries.NewCalculateDimensionalWeightQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateReviewShipmentQueryHandler() queries.ReviewShipmentQueryHandler {
	return queries.NewReviewShipmentQueryHandler(
		c.addressChain,
		c.packageChain,
		c.optionsChain,
		c.calculator,
		c.recorder,
	)
}

// CreateHTTPServer wires the query handlers into the echo instance.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateValidateAddressQueryHandler(),
		c.CreateValidatePackageQueryHandler(),
		c.CreateCalculateDimensionalWeightQueryHandler(),
		c.CreateReviewShipmentQueryHandler(),
		c.logger,
	)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Logger:   c.logger,
		Gatherer: c.registry,
		Observer: c.httpMetrics,
	})
}
