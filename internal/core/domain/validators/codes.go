package validators

// Error codes reported in validation.Error.Code. They are part of the API
// contract and must not change.
const (
	CodeRequiredField         = "REQUIRED_FIELD"
	CodeInvalidUSPostalCode   = "INVALID_US_POSTAL_CODE"
	CodeInvalidUKPostalCode   = "INVALID_UK_POSTAL_CODE"
	CodeInvalidUSStateCode    = "INVALID_US_STATE_CODE"
	CodeInvalidDimensions     = "INVALID_DIMENSIONS"
	CodeInvalidWeight         = "INVALID_WEIGHT"
	CodeUnsupportedWeightUnit = "UNSUPPORTED_WEIGHT_UNIT"
	CodeInvalidServiceSpeed   = "INVALID_SERVICE_SPEED"
	CodeInvalidInsuredValue   = "INVALID_INSURED_VALUE"
)
