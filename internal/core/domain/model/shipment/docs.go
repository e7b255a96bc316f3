// Package shipment provides the records collected by the shipping rate form:
// the origin and destination Address, the Package being shipped and the
// ShippingOptions chosen for it.
//
// The records are plain values. They are built fresh for every validation
// call, owned by the caller and never mutated by the validators. Whether a
// record is acceptable is decided by the validation chains in package
// validators, not by these types: an Address with an empty city is a
// perfectly representable value that simply fails validation.
//
// Field names used in validation errors are declared here so that adapters
// can map errors back to the attributes they describe.
package shipment
