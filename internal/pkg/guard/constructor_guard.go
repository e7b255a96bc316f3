// Package guard detects values that were declared as zero values instead of
// being built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in query and response values. Only NewConstructorGuard
// sets the flag, so a zero-value struct fails Validate.
//
// Example:
//
//	var ErrReviewShipmentQueryIsNotConstructed = errors.New("ReviewShipmentQuery must be created via NewReviewShipmentQuery")
//
//	type ReviewShipmentQuery struct {
//	    origin shipment.Address
//	    guard  guard.ConstructorGuard
//	}
//
//	func (q ReviewShipmentQuery) Validate() error {
//	    return q.guard.Validate(ErrReviewShipmentQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced with ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
