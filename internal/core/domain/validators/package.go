package validators

import (
	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
)

// DimensionsValidator requires length, width and height to be strictly positive.
// Missing measurements fail as well. The unit plays no part.
type DimensionsValidator struct{}

func (DimensionsValidator) Validate(pkg shipment.Package) validation.Result {
	d := pkg.Dimensions
	if !kernel.IsPositive(d.Length) || !kernel.IsPositive(d.Width) || !kernel.IsPositive(d.Height) {
		return validation.NewResult(validation.Error{
			Field:   shipment.FieldDimensions,
			Message: "All dimensions must be greater than zero",
			Code:    CodeInvalidDimensions,
		})
	}
	return validation.Valid()
}

// WeightValidator checks the weight value and unit independently and reports both failures.
type WeightValidator struct{}

func (WeightValidator) Validate(pkg shipment.Package) validation.Result {
	return validation.Apply(
		validation.Rule{
			Check: func() bool { return kernel.IsPositive(pkg.Weight.Value) },
			Error: validation.Error{
				Field:   shipment.FieldWeight,
				Message: "Weight must be greater than zero",
				Code:    CodeInvalidWeight,
			},
		},
		validation.Rule{
			Check: pkg.Weight.Unit.IsSupported,
			Error: validation.Error{
				Field:   shipment.FieldWeight,
				Message: "Unsupported weight unit",
				Code:    CodeUnsupportedWeightUnit,
			},
		},
	)
}
