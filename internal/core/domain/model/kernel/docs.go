// Package kernel holds the primitives shared by the shipment model and the
// domain services: measurement units, supported countries, the conversion
// constants used for billable weight and the "unset" marker for measurements
// that have not been entered yet.
//
// Units are plain string types so that records decoded from JSON or YAML keep
// whatever value the client sent. IsSupported tells the validators whether a
// value is one of the known units.
package kernel
