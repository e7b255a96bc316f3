// Package errs provides the error types shared by the ratecalc packages.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired) used with errors.Is
//   - a struct type carrying the offending parameter name and an optional cause
//   - constructor functions with and without cause
//   - Unwrap returning the sentinel
//
// These errors describe misuse of the API or malformed input (a missing request
// section, an unknown field name). Rule violations found while validating an
// address or a package are never errors: they are reported as data in a
// validation.Result.
package errs
