package validators_test

import (
	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
)

func validUSAddress() shipment.Address {
	return shipment.Address{
		Name:       "John Doe",
		Street1:    "123 Main St",
		City:       "New York",
		State:      "NY",
		PostalCode: "10001",
		Country:    kernel.US,
	}
}

func validUKAddress() shipment.Address {
	return shipment.Address{
		Name:       "Jane Smith",
		Street1:    "10 Downing St",
		City:       "London",
		PostalCode: "SW1A 1AA",
		Country:    kernel.UK,
	}
}

func validPackage() shipment.Package {
	return shipment.Package{
		ID: "pkg-1",
		Dimensions: shipment.Dimensions{
			Length: 20,
			Width:  10,
			Height: 5,
			Unit:   kernel.Inches,
		},
		Weight: shipment.Weight{Value: 10, Unit: kernel.Pounds},
		Type:   shipment.Box,
	}
}

func fields(result validation.Result) []string {
	out := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		out = append(out, e.Field)
	}
	return out
}
