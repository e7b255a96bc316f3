package kernel

import (
	"math"
	"math/big"
)

const (
	// KgToLbs converts kilograms to pounds.
	KgToLbs = 2.20462

	// CmVolumetricDivisor turns cubic centimeters into volumetric kilograms.
	CmVolumetricDivisor = 5000.0

	// InVolumetricDivisor turns cubic inches into volumetric pounds.
	InVolumetricDivisor = 139.0
)

// Unset returns the marker used for a measurement that has not been provided.
func Unset() float64 {
	return math.NaN()
}

// IsUnset reports whether v is the Unset marker.
func IsUnset(v float64) bool {
	return math.IsNaN(v)
}

// IsPositive reports whether v is a finite number strictly greater than zero.
// Unset and infinite values are not positive.
func IsPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// exactPrec holds the product of a float64 mantissa and 100 without rounding.
const exactPrec = 128

// Round2 rounds v to two decimal places. The exact binary value of v is
// rounded, so 0.155 (stored as 0.15499...) becomes 0.15, and an exact half
// such as 0.125 goes away from zero. Non-finite values are returned as is.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e15 {
		return v
	}

	scaled := new(big.Float).SetPrec(exactPrec).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, big.NewFloat(100))

	cents, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(exactPrec).Sub(scaled, new(big.Float).SetInt(cents))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	return math.Copysign(float64(cents.Int64())/100, v)
}
