package queries_test

import (
	"context"

	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"

	"github.com/stretchr/testify/mock"
)

type MockValidationRecorder struct{ mock.Mock }

func (m *MockValidationRecorder) RecordValidation(ctx context.Context, chain string, result validation.Result) {
	m.Called(ctx, chain, result)
}

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) Validate(address shipment.Address) validation.Result {
	args := m.Called(address)
	return args.Get(0).(validation.Result)
}

func newUSAddress() shipment.Address {
	return shipment.Address{
		Name:       "John Doe",
		Street1:    "123 Main St",
		City:       "New York",
		State:      "NY",
		PostalCode: "10001",
		Country:    kernel.US,
	}
}

func newUKAddress() shipment.Address {
	return shipment.Address{
		Name:       "Jane Smith",
		Street1:    "10 Downing St",
		City:       "London",
		PostalCode: "SW1A 1AA",
		Country:    kernel.UK,
	}
}

func newPackage() shipment.Package {
	return shipment.Package{
		ID:         "pkg-1",
		Dimensions: shipment.Dimensions{Length: 20, Width: 10, Height: 5, Unit: kernel.Inches},
		Weight:     shipment.Weight{Value: 1, Unit: kernel.Pounds},
		Type:       shipment.Box,
	}
}
