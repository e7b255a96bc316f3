package queries

import (
	"context"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/services"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/ports"

	"github.com/google/uuid"
)

// ReviewShipmentQueryHandler validates every section of the rate form and
// computes the billable weight. Sections are validated independently, so a
// failing origin does not hide package errors.
type ReviewShipmentQueryHandler struct {
	addressChain validation.Validator[shipment.Address]
	packageChain validation.Validator[shipment.Package]
	optionsChain validation.Validator[shipment.ShippingOptions]
	calculator   services.DimensionalWeightCalculator
	recorder     ports.ValidationRecorder
}

func NewReviewShipmentQueryHandler(
	addressChain validation.Validator[shipment.Address],
	packageChain validation.Validator[shipment.Package],
	optionsChain validation.Validator[shipment.ShippingOptions],
	calculator services.DimensionalWeightCalculator,
	recorder ports.ValidationRecorder,
) ReviewShipmentQueryHandler {
	return ReviewShipmentQueryHandler{
		addressChain: addressChain,
		packageChain: packageChain,
		optionsChain: optionsChain,
		calculator:   calculator,
		recorder:     recorder,
	}
}

func (h ReviewShipmentQueryHandler) Handle(
	ctx context.Context,
	query ReviewShipmentQuery,
) (ReviewShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewShipmentQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return ReviewShipmentQueryResponse{}, err
	}

	response := ReviewShipmentQueryResponse{
		ReviewID:    uuid.New(),
		Origin:      h.addressChain.Validate(query.Origin()),
		Destination: h.addressChain.Validate(query.Destination()),
		Package:     h.packageChain.Validate(query.Package()),
		Options:     h.optionsChain.Validate(query.Options()),
	}
	response.BillableWeight = h.calculator.Compute(query.Package().Dimensions, query.Package().Weight)
	response.IsComplete = response.Origin.IsValid &&
		response.Destination.IsValid &&
		response.Package.IsValid &&
		response.Options.IsValid

	record(ctx, h.recorder, ports.ChainAddress, response.Origin)
	record(ctx, h.recorder, ports.ChainAddress, response.Destination)
	record(ctx, h.recorder, ports.ChainPackage, response.Package)
	record(ctx, h.recorder, ports.ChainShippingOptions, response.Options)

	return response, nil
}
