// Package dto defines the request and response shapes shared by the inbound
// adapters. Requests decode from JSON or YAML; numeric measurements are
// pointers so that a missing value can be told apart from zero.
package dto

import (
	"errors"

	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/services"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/pkg/errs"
)

type Address struct {
	Name       string `json:"name" yaml:"name"`
	Street1    string `json:"street1" yaml:"street1"`
	Street2    string `json:"street2,omitempty" yaml:"street2,omitempty"`
	City       string `json:"city" yaml:"city"`
	State      string `json:"state" yaml:"state"`
	PostalCode string `json:"postalCode" yaml:"postalCode"`
	Country    string `json:"country" yaml:"country"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

func (a Address) ToDomain() shipment.Address {
	return shipment.Address{
		Name:       a.Name,
		Street1:    a.Street1,
		Street2:    a.Street2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    kernel.Country(a.Country),
		Phone:      a.Phone,
	}
}

type Dimensions struct {
	Length *float64 `json:"length" yaml:"length"`
	Width  *float64 `json:"width" yaml:"width"`
	Height *float64 `json:"height" yaml:"height"`
	Unit   string   `json:"unit" yaml:"unit"`
}

func (d Dimensions) ToDomain() shipment.Dimensions {
	return shipment.Dimensions{
		Length: measurement(d.Length),
		Width:  measurement(d.Width),
		Height: measurement(d.Height),
		Unit:   kernel.DimensionUnit(d.Unit),
	}
}

type Weight struct {
	Value *float64 `json:"value" yaml:"value"`
	Unit  string   `json:"unit" yaml:"unit"`
}

func (w Weight) ToDomain() shipment.Weight {
	return shipment.Weight{
		Value: measurement(w.Value),
		Unit:  kernel.WeightUnit(w.Unit),
	}
}

type Package struct {
	ID            string     `json:"id" yaml:"id"`
	Dimensions    Dimensions `json:"dimensions" yaml:"dimensions"`
	Weight        Weight     `json:"weight" yaml:"weight"`
	Type          string     `json:"type" yaml:"type"`
	DeclaredValue *float64   `json:"declaredValue,omitempty" yaml:"declaredValue,omitempty"`
}

func (p Package) ToDomain() shipment.Package {
	return shipment.Package{
		ID:            p.ID,
		Dimensions:    p.Dimensions.ToDomain(),
		Weight:        p.Weight.ToDomain(),
		Type:          shipment.PackageType(p.Type),
		DeclaredValue: p.DeclaredValue,
	}
}

type ShippingOptions struct {
	Speed             string   `json:"speed" yaml:"speed"`
	SignatureRequired bool     `json:"signatureRequired" yaml:"signatureRequired"`
	FragileHandling   bool     `json:"fragileHandling" yaml:"fragileHandling"`
	SaturdayDelivery  bool     `json:"saturdayDelivery" yaml:"saturdayDelivery"`
	Insurance         bool     `json:"insurance" yaml:"insurance"`
	InsuredValue      *float64 `json:"insuredValue,omitempty" yaml:"insuredValue,omitempty"`
}

func (o ShippingOptions) ToDomain() shipment.ShippingOptions {
	return shipment.ShippingOptions{
		Speed:             shipment.ServiceSpeed(o.Speed),
		SignatureRequired: o.SignatureRequired,
		FragileHandling:   o.FragileHandling,
		SaturdayDelivery:  o.SaturdayDelivery,
		Insurance:         o.Insurance,
		InsuredValue:      o.InsuredValue,
	}
}

// DimensionalWeightRequest is the body of a billable weight calculation.
type DimensionalWeightRequest struct {
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`
	Weight     Weight     `json:"weight" yaml:"weight"`
}

// ShipmentReviewRequest is the whole rate form. Origin, destination and
// package are mandatory sections; missing shipping options are reviewed as
// an empty selection.
type ShipmentReviewRequest struct {
	Origin          *Address         `json:"origin" yaml:"origin"`
	Destination     *Address         `json:"destination" yaml:"destination"`
	Package         *Package         `json:"package" yaml:"package"`
	ShippingOptions *ShippingOptions `json:"shippingOptions,omitempty" yaml:"shippingOptions,omitempty"`
}

// Validate reports every missing mandatory section.
func (r ShipmentReviewRequest) Validate() error {
	var origin, destination, pkg error
	if r.Origin == nil {
		origin = errs.NewValueIsRequiredError("origin")
	}
	if r.Destination == nil {
		destination = errs.NewValueIsRequiredError("destination")
	}
	if r.Package == nil {
		pkg = errs.NewValueIsRequiredError("package")
	}
	return errors.Join(origin, destination, pkg)
}

// ToQuery builds the review query. Call Validate first.
func (r ShipmentReviewRequest) ToQuery() (queries.ReviewShipmentQuery, error) {
	if err := r.Validate(); err != nil {
		return queries.ReviewShipmentQuery{}, err
	}

	var options shipment.ShippingOptions
	if r.ShippingOptions != nil {
		options = r.ShippingOptions.ToDomain()
	}

	return queries.NewReviewShipmentQuery(
		r.Origin.ToDomain(),
		r.Destination.ToDomain(),
		r.Package.ToDomain(),
		options,
	), nil
}

// ShipmentReviewResponse is the rendered outcome of a shipment review.
type ShipmentReviewResponse struct {
	ReviewID        string                  `json:"reviewId" yaml:"reviewId"`
	IsComplete      bool                    `json:"isComplete" yaml:"isComplete"`
	Origin          validation.Result       `json:"origin" yaml:"origin"`
	Destination     validation.Result       `json:"destination" yaml:"destination"`
	Package         validation.Result       `json:"package" yaml:"package"`
	ShippingOptions validation.Result       `json:"shippingOptions" yaml:"shippingOptions"`
	BillableWeight  services.BillableWeight `json:"billableWeight" yaml:"billableWeight"`
}

func NewShipmentReviewResponse(review queries.ReviewShipmentQueryResponse) ShipmentReviewResponse {
	return ShipmentReviewResponse{
		ReviewID:        review.ReviewID.String(),
		IsComplete:      review.IsComplete,
		Origin:          review.Origin,
		Destination:     review.Destination,
		Package:         review.Package,
		ShippingOptions: review.Options,
		BillableWeight:  review.BillableWeight,
	}
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func measurement(v *float64) float64 {
	if v == nil {
		return kernel.Unset()
	}
	return *v
}
