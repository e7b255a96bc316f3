// Package validators provides the concrete rules for shipment records and
// the factories that assemble them into fixed-order chains:
//
//   - NewAddressValidationChain: RequiredFields -> PostalCodeFormat -> StateCode
//   - NewPackageValidationChain: Dimensions -> Weight
//   - NewShippingOptionsValidationChain: ServiceSpeed -> Insurance
//
// Every validator is a stateless value; the chains built from them can be
// shared by any number of goroutines.
package validators
