package validators

import (
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
)

// NewAddressValidationChain returns RequiredFields -> PostalCodeFormat -> StateCode.
func NewAddressValidationChain() validation.Chain[shipment.Address] {
	return validation.NewChain[shipment.Address](RequiredFieldsValidator{}).
		Link(PostalCodeFormatValidator{}).
		Link(StateCodeValidator{})
}

// NewPackageValidationChain returns Dimensions -> Weight.
func NewPackageValidationChain() validation.Chain[shipment.Package] {
	return validation.NewChain[shipment.Package](DimensionsValidator{}).
		Link(WeightValidator{})
}

// NewShippingOptionsValidationChain returns ServiceSpeed -> Insurance.
func NewShippingOptionsValidationChain() validation.Chain[shipment.ShippingOptions] {
	return validation.NewChain[shipment.ShippingOptions](ServiceSpeedValidator{}).
		Link(InsuranceValidator{})
}
