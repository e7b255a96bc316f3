package queries

import (
	"context"

	"ratecalc/internal/core/domain/services"
)

type CalculateDimensionalWeightQueryHandler struct {
	calculator services.DimensionalWeightCalculator
}

func NewCalculateDimensionalWeightQueryHandler(
	calculator services.DimensionalWeightCalculator,
) CalculateDimensionalWeightQueryHandler {
	return CalculateDimensionalWeightQueryHandler{calculator: calculator}
}

// Handle returns the billable weight, or the zero value while measurements are missing.
func (h CalculateDimensionalWeightQueryHandler) Handle(
	ctx context.Context,
	query CalculateDimensionalWeightQuery,
) (services.BillableWeight, error) {
	if err := query.Validate(); err != nil {
		return services.BillableWeight{}, err
	}
	if err := ctx.Err(); err != nil {
		return services.BillableWeight{}, err
	}

	return h.calculator.Compute(query.Dimensions(), query.Weight()), nil
}
