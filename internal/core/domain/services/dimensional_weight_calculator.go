package services

import (
	"math"

	"ratecalc/internal/core/domain/model/kernel"
	"ratecalc/internal/core/domain/model/shipment"
)

// BillableWeight is the outcome of a dimensional weight computation.
// All weights are in pounds, rounded to two decimals.
type BillableWeight struct {
	ActualWeightLbs      float64 `json:"actualWeightLbs" yaml:"actualWeightLbs"`
	DimensionalWeightLbs float64 `json:"dimensionalWeightLbs" yaml:"dimensionalWeightLbs"`
	BillableWeightLbs    float64 `json:"billableWeightLbs" yaml:"billableWeightLbs"`
	IsDimensionalApplied bool    `json:"isDimensionalApplied" yaml:"isDimensionalApplied"`
}

// DimensionalWeightCalculator computes the weight a carrier bills for a package:
// the larger of the actual weight and the volumetric (dimensional) weight.
//
// Formulas:
//   - inches: volume = l*w*h, dimensional = volume / 139
//   - centimeters: volume = l*w*h / 5000, dimensional = volume * 2.20462
//   - actual: pounds pass through, kilograms are multiplied by 2.20462
//
// Any dimension unit other than inches takes the centimeter branch and any
// weight unit other than pounds is treated as kilograms. Rejecting unknown
// units is the job of the package validation chain.
//
// Example:
//
//	calc := NewDimensionalWeightCalculator()
//	w := calc.Compute(
//	    shipment.Dimensions{Length: 20, Width: 10, Height: 5, Unit: kernel.Inches},
//	    shipment.Weight{Value: 1, Unit: kernel.Pounds},
//	)
//	// w.DimensionalWeightLbs == 7.19, w.BillableWeightLbs == 7.19, w.IsDimensionalApplied == true
type DimensionalWeightCalculator struct{}

func NewDimensionalWeightCalculator() DimensionalWeightCalculator {
	return DimensionalWeightCalculator{}
}

// Compute returns the billable weight for the given measurements.
// If any measurement is unset, or the measurements are too large for a
// finite weight, the zero BillableWeight is returned.
func (DimensionalWeightCalculator) Compute(dimensions shipment.Dimensions, weight shipment.Weight) BillableWeight {
	if !dimensions.IsComplete() || !weight.IsComplete() {
		return BillableWeight{}
	}

	dimensional := dimensionalWeightLbs(dimensions)
	actual := actualWeightLbs(weight)
	if math.IsInf(dimensional, 0) || math.IsInf(actual, 0) {
		return BillableWeight{}
	}

	return BillableWeight{
		ActualWeightLbs:      kernel.Round2(actual),
		DimensionalWeightLbs: kernel.Round2(dimensional),
		BillableWeightLbs:    kernel.Round2(max(actual, dimensional)),
		IsDimensionalApplied: dimensional > actual,
	}
}

func dimensionalWeightLbs(d shipment.Dimensions) float64 {
	cubic := d.Length * d.Width * d.Height
	if d.Unit == kernel.Inches {
		return cubic / kernel.InVolumetricDivisor
	}
	return cubic / kernel.CmVolumetricDivisor * kernel.KgToLbs
}

func actualWeightLbs(w shipment.Weight) float64 {
	if w.Unit == kernel.Pounds {
		return w.Value
	}
	return w.Value * kernel.KgToLbs
}
