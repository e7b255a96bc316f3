// Package queries contains the read-only use cases of the rate calculator.
// Each query is built by its constructor and answered by a handler that runs
// the matching domain component. Queries never change any state.
package queries

import (
	"errors"
	"fmt"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/pkg/errs"
	"ratecalc/internal/pkg/guard"
)

var (
	ErrValidateAddressQueryIsNotConstructed = errors.New(
		"ValidateAddressQuery must be created via NewValidateAddressQuery constructor",
	)
)

// ValidateAddressQuery asks for the validation of an origin or destination address.
// When a field is given, only the errors reported for that field are returned;
// the whole address is still run through the chain so that cross-field rules
// (state is required for US) apply.
//
// Example:
//
//	query, err := NewValidateAddressQuery(address, shipment.FieldPostalCode)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type ValidateAddressQuery struct {
	address shipment.Address
	field   string

	guard guard.ConstructorGuard
}

// NewValidateAddressQuery creates the query. An empty field selects every error.
// Returns errs.ValueIsInvalidError for a field that is not an address attribute.
func NewValidateAddressQuery(address shipment.Address, field string) (ValidateAddressQuery, error) {
	query := ValidateAddressQuery{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := query.setField(field); err != nil {
		return ValidateAddressQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateAddressQuery) Validate() error {
	return q.guard.Validate(ErrValidateAddressQueryIsNotConstructed)
}

func (q ValidateAddressQuery) Address() shipment.Address {
	return q.address
}

// Field returns the selected field, or "" for all fields.
func (q ValidateAddressQuery) Field() string {
	return q.field
}

func (q *ValidateAddressQuery) setField(field string) error {
	if field != "" && !shipment.IsAddressField(field) {
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("unknown address field %q", field))
	}

	q.field = field
	return nil
}
