// Package services provides domain services that compute values from several
// shipment records at once and do not belong to any single record type.
//
// The package includes:
//   - DimensionalWeightCalculator: derives the billable weight of a package
//     from its dimensions and its actual weight
package services
