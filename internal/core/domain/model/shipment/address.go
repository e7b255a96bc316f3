package shipment

import (
	"slices"

	"ratecalc/internal/core/domain/model/kernel"
)

// Address field names as reported in validation errors.
const (
	FieldName       = "name"
	FieldStreet1    = "street1"
	FieldStreet2    = "street2"
	FieldCity       = "city"
	FieldState      = "state"
	FieldPostalCode = "postalCode"
	FieldCountry    = "country"
	FieldPhone      = "phone"
)

// Address is a postal address as entered for the origin or destination.
// State is only meaningful for US addresses.
type Address struct {
	Name       string         `json:"name" yaml:"name"`
	Street1    string         `json:"street1" yaml:"street1"`
	Street2    string         `json:"street2,omitempty" yaml:"street2,omitempty"`
	City       string         `json:"city" yaml:"city"`
	State      string         `json:"state" yaml:"state"`
	PostalCode string         `json:"postalCode" yaml:"postalCode"`
	Country    kernel.Country `json:"country" yaml:"country"`
	Phone      string         `json:"phone,omitempty" yaml:"phone,omitempty"`
}

var addressFields = []string{
	FieldName,
	FieldStreet1,
	FieldStreet2,
	FieldCity,
	FieldState,
	FieldPostalCode,
	FieldCountry,
	FieldPhone,
}

// IsAddressField reports whether name is one of the Address attributes.
func IsAddressField(name string) bool {
	return slices.Contains(addressFields, name)
}
