package kernel

// DimensionUnit is the length unit of a package's dimensions.
type DimensionUnit string

const (
	Inches      DimensionUnit = "in"
	Centimeters DimensionUnit = "cm"
)

func (u DimensionUnit) IsSupported() bool {
	return u == Inches || u == Centimeters
}

func (u DimensionUnit) String() string {
	return string(u)
}

// WeightUnit is the mass unit of a package's weight.
type WeightUnit string

const (
	Pounds    WeightUnit = "lbs"
	Kilograms WeightUnit = "kg"
)

func (u WeightUnit) IsSupported() bool {
	return u == Pounds || u == Kilograms
}

func (u WeightUnit) String() string {
	return string(u)
}

// Country is an ISO-like country code as entered on an address.
// Only US and UK get country specific rules; other values are carried as is.
type Country string

const (
	US Country = "US"
	UK Country = "UK"
)

func (c Country) String() string {
	return string(c)
}
