package queries

import (
	"errors"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/services"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrReviewShipmentQueryIsNotConstructed = errors.New(
		"ReviewShipmentQuery must be created via NewReviewShipmentQuery constructor",
	)
)

// ReviewShipmentQuery asks for a review of the whole rate form before a rate is requested:
// both addresses, the package, the shipping options and the billable weight.
//
// Example:
//
//	query := NewReviewShipmentQuery(origin, destination, pkg, options)
//	review, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !review.IsComplete {
//	    // show review.Origin.Errors, review.Package.Errors, ...
//	}
type ReviewShipmentQuery struct {
	origin      shipment.Address
	destination shipment.Address
	pkg         shipment.Package
	options     shipment.ShippingOptions

	guard guard.ConstructorGuard
}

func NewReviewShipmentQuery(
	origin shipment.Address,
	destination shipment.Address,
	pkg shipment.Package,
	options shipment.ShippingOptions,
) ReviewShipmentQuery {
	return ReviewShipmentQuery{
		origin:      origin,
		destination: destination,
		pkg:         pkg,
		options:     options,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ReviewShipmentQuery) Validate() error {
	return q.guard.Validate(ErrReviewShipmentQueryIsNotConstructed)
}

func (q ReviewShipmentQuery) Origin() shipment.Address {
	return q.origin
}

func (q ReviewShipmentQuery) Destination() shipment.Address {
	return q.destination
}

func (q ReviewShipmentQuery) Package() shipment.Package {
	return q.pkg
}

func (q ReviewShipmentQuery) Options() shipment.ShippingOptions {
	return q.options
}

// ReviewShipmentQueryResponse holds one validation result per form section.
// IsComplete is true iff every section is valid.
type ReviewShipmentQueryResponse struct {
	ReviewID       uuid.UUID
	Origin         validation.Result
	Destination    validation.Result
	Package        validation.Result
	Options        validation.Result
	BillableWeight services.BillableWeight
	IsComplete     bool
}
