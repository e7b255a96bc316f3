package queries

import (
	"errors"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/pkg/guard"
)

var (
	ErrCalculateDimensionalWeightQueryIsNotConstructed = errors.New(
		"CalculateDimensionalWeightQuery must be created via NewCalculateDimensionalWeightQuery constructor",
	)
)

// CalculateDimensionalWeightQuery asks for the billable weight of a package.
// Measurements may be unset while the form is being filled in.
type CalculateDimensionalWeightQuery struct {
	dimensions shipment.Dimensions
	weight     shipment.Weight

	guard guard.ConstructorGuard
}

func NewCalculateDimensionalWeightQuery(dimensions shipment.Dimensions, weight shipment.Weight) CalculateDimensionalWeightQuery {
	return CalculateDimensionalWeightQuery{
		dimensions: dimensions,
		weight:     weight,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q CalculateDimensionalWeightQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDimensionalWeightQueryIsNotConstructed)
}

func (q CalculateDimensionalWeightQuery) Dimensions() shipment.Dimensions {
	return q.dimensions
}

func (q CalculateDimensionalWeightQuery) Weight() shipment.Weight {
	return q.weight
}
