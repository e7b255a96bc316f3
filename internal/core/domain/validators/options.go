package validators

import (
	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
)

// ServiceSpeedValidator requires one of the offered service speeds.
type ServiceSpeedValidator struct{}

func (ServiceSpeedValidator) Validate(options shipment.ShippingOptions) validation.Result {
	switch {
	case isBlank(string(options.Speed)):
		return validation.NewResult(validation.Error{
			Field:   shipment.FieldSpeed,
			Message: "Service speed is required",
			Code:    CodeRequiredField,
		})
	case !options.Speed.IsSupported():
		return validation.NewResult(validation.Error{
			Field:   shipment.FieldSpeed,
			Message: "Unsupported service speed",
			Code:    CodeInvalidServiceSpeed,
		})
	}
	return validation.Valid()
}

// InsuranceValidator requires a positive insured value when insurance is selected.
type InsuranceValidator struct{}

func (InsuranceValidator) Validate(options shipment.ShippingOptions) validation.Result {
	if !options.Insurance {
		return validation.Valid()
	}
	if options.InsuredValue == nil || !kernel.IsPositive(*options.InsuredValue) {
		return validation.NewResult(validation.Error{
			Field:   shipment.FieldInsuredValue,
			Message: "Insured value must be greater than zero",
			Code:    CodeInvalidInsuredValue,
		})
	}
	return validation.Valid()
}
