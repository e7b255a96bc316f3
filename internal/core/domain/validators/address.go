package validators

import (
	"regexp"
	"strings"

	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
)

var (
	usPostalCode = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ukPostalCode = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s\d[A-Z]{2}$`)
)

// usStateCodes holds the 50 USPS state abbreviations.
var usStateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func required(value, field, message string) validation.Rule {
	return validation.Rule{
		Check: func() bool { return !isBlank(value) },
		Error: validation.Error{Field: field, Message: message, Code: CodeRequiredField},
	}
}

// RequiredFieldsValidator reports every blank mandatory address field at once.
// State is mandatory only for US addresses.
type RequiredFieldsValidator struct{}

func (RequiredFieldsValidator) Validate(address shipment.Address) validation.Result {
	rules := []validation.Rule{
		required(address.Street1, shipment.FieldStreet1, "Street address is required"),
		required(address.City, shipment.FieldCity, "City is required"),
	}
	if address.Country == kernel.US {
		rules = append(rules, required(address.State, shipment.FieldState, "State is required"))
	}
	rules = append(rules,
		required(address.PostalCode, shipment.FieldPostalCode, "Postal code is required"),
		required(string(address.Country), shipment.FieldCountry, "Country is required"),
	)
	return validation.Apply(rules...)
}

// PostalCodeFormatValidator checks the postal code against the country's format.
// Countries without a known format pass.
type PostalCodeFormatValidator struct{}

func (PostalCodeFormatValidator) Validate(address shipment.Address) validation.Result {
	switch address.Country {
	case kernel.US:
		if !usPostalCode.MatchString(address.PostalCode) {
			return validation.NewResult(validation.Error{
				Field:   shipment.FieldPostalCode,
				Message: "Invalid US postal code format",
				Code:    CodeInvalidUSPostalCode,
			})
		}
	case kernel.UK:
		if !ukPostalCode.MatchString(address.PostalCode) {
			return validation.NewResult(validation.Error{
				Field:   shipment.FieldPostalCode,
				Message: "Invalid UK postal code format",
				Code:    CodeInvalidUKPostalCode,
			})
		}
	}
	return validation.Valid()
}

// StateCodeValidator checks that a US state is a two-letter USPS code.
// The comparison is case-insensitive; non-US addresses pass.
type StateCodeValidator struct{}

func (StateCodeValidator) Validate(address shipment.Address) validation.Result {
	if address.Country != kernel.US {
		return validation.Valid()
	}

	code := strings.ToUpper(address.State)
	if _, ok := usStateCodes[code]; len(code) != 2 || !ok {
		return validation.NewResult(validation.Error{
			Field:   shipment.FieldState,
			Message: "Invalid US state code",
			Code:    CodeInvalidUSStateCode,
		})
	}
	return validation.Valid()
}
