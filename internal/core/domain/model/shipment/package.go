package shipment

import "ratecalc/internal/core/domain/model/kernel"

// Package field names as reported in validation errors.
const (
	FieldDimensions = "dimensions"
	FieldWeight     = "weight"
)

type PackageType string

const (
	Envelope PackageType = "envelope"
	Box      PackageType = "box"
	Tube     PackageType = "tube"
	Custom   PackageType = "custom"
)

// Dimensions are the outer measurements of a package.
// A measurement that has not been entered is kernel.Unset().
type Dimensions struct {
	Length float64              `json:"length" yaml:"length"`
	Width  float64              `json:"width" yaml:"width"`
	Height float64              `json:"height" yaml:"height"`
	Unit   kernel.DimensionUnit `json:"unit" yaml:"unit"`
}

// IsComplete reports whether all three measurements are present.
func (d Dimensions) IsComplete() bool {
	return !kernel.IsUnset(d.Length) && !kernel.IsUnset(d.Width) && !kernel.IsUnset(d.Height)
}

// Weight is the actual weight of a package.
type Weight struct {
	Value float64           `json:"value" yaml:"value"`
	Unit  kernel.WeightUnit `json:"unit" yaml:"unit"`
}

// IsComplete reports whether the weight value is present.
func (w Weight) IsComplete() bool {
	return !kernel.IsUnset(w.Value)
}

type Package struct {
	ID            string      `json:"id" yaml:"id"`
	Dimensions    Dimensions  `json:"dimensions" yaml:"dimensions"`
	Weight        Weight      `json:"weight" yaml:"weight"`
	Type          PackageType `json:"type" yaml:"type"`
	DeclaredValue *float64    `json:"declaredValue,omitempty" yaml:"declaredValue,omitempty"`
}
