package shipment

// Shipping options field names as reported in validation errors.
const (
	FieldSpeed        = "speed"
	FieldInsuredValue = "insuredValue"
)

// ServiceSpeed is the delivery service level.
type ServiceSpeed string

const (
	Overnight ServiceSpeed = "overnight"
	TwoDay    ServiceSpeed = "two-day"
	Standard  ServiceSpeed = "standard"
	Economy   ServiceSpeed = "economy"
)

func (s ServiceSpeed) IsSupported() bool {
	switch s {
	case Overnight, TwoDay, Standard, Economy:
		return true
	default:
		return false
	}
}

// ShippingOptions are the extra services requested for a shipment.
// InsuredValue only matters when Insurance is set.
type ShippingOptions struct {
	Speed             ServiceSpeed `json:"speed" yaml:"speed"`
	SignatureRequired bool         `json:"signatureRequired" yaml:"signatureRequired"`
	FragileHandling   bool         `json:"fragileHandling" yaml:"fragileHandling"`
	SaturdayDelivery  bool         `json:"saturdayDelivery" yaml:"saturdayDelivery"`
	Insurance         bool         `json:"insurance" yaml:"insurance"`
	InsuredValue      *float64     `json:"insuredValue,omitempty" yaml:"insuredValue,omitempty"`
}
