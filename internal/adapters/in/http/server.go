package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ratecalc/internal/adapters/in/dto"
	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server handles the rate form HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	validateAddressHandler            queries.ValidateAddressQueryHandler
	validatePackageHandler            queries.ValidatePackageQueryHandler
	calculateDimensionalWeightHandler queries.CalculateDimensionalWeightQueryHandler
	reviewShipmentHandler             queries.ReviewShipmentQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	validateAddressHandler queries.ValidateAddressQueryHandler,
	validatePackageHandler queries.ValidatePackageQueryHandler,
	calculateDimensionalWeightHandler queries.CalculateDimensionalWeightQueryHandler,
	reviewShipmentHandler queries.ReviewShipmentQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		validateAddressHandler:            validateAddressHandler,
		validatePackageHandler:            validatePackageHandler,
		calculateDimensionalWeightHandler: calculateDimensionalWeightHandler,
		reviewShipmentHandler:             reviewShipmentHandler,
		logger:                            logger.With("component", "http"),
	}
}

// ValidateAddress handles POST /api/v1/addresses/validate.
// With ?field= only the errors of that field are returned.
func (s *Server) ValidateAddress(ctx echo.Context) error {
	var field *string
	if err := runtime.BindQueryParameter("form", true, false, "field", ctx.QueryParams(), &field); err != nil {
		return badRequest(ctx, "Invalid field parameter")
	}

	var body dto.Address
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var selected string
	if field != nil {
		selected = *field
	}

	query, err := queries.NewValidateAddressQuery(body.ToDomain(), selected)
	if err != nil {
		return badRequest(ctx, "Invalid address query: "+err.Error())
	}

	result, err := s.validateAddressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to validate address", err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ValidatePackage handles POST /api/v1/packages/validate.
func (s *Server) ValidatePackage(ctx echo.Context) error {
	var body dto.Package
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query := queries.NewValidatePackageQuery(body.ToDomain())

	result, err := s.validatePackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to validate package", err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CalculateDimensionalWeight handles POST /api/v1/packages/dimensional-weight.
func (s *Server) CalculateDimensionalWeight(ctx echo.Context) error {
	var body dto.DimensionalWeightRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query := queries.NewCalculateDimensionalWeightQuery(body.Dimensions.ToDomain(), body.Weight.ToDomain())

	billable, err := s.calculateDimensionalWeightHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to calculate dimensional weight", err)
	}

	return ctx.JSON(http.StatusOK, billable)
}

// ReviewShipment handles POST /api/v1/shipments/review.
func (s *Server) ReviewShipment(ctx echo.Context) error {
	var body dto.ShipmentReviewRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := body.ToQuery()
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) {
			return badRequest(ctx, "Incomplete shipment: "+err.Error())
		}
		return badRequest(ctx, "Invalid shipment: "+err.Error())
	}

	review, err := s.reviewShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to review shipment", err)
	}

	return ctx.JSON(http.StatusOK, dto.NewShipmentReviewResponse(review))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
	return ctx.JSON(http.StatusInternalServerError, dto.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, dto.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
