// Package validation provides the building blocks of rule based record
// validation: the field level Error, the Result returned by every check, the
// Validator contract and Chain, an ordered composite of validators.
//
// A Chain runs its stages in order and stops at the first stage that reports
// errors, so a result never mixes errors from two stages. A single stage may
// still report several errors at once; Apply is the helper for such stages.
//
// Invalid input is data, not a failure: validators return a Result and never
// an error or a panic.
//
// Example:
//
//	chain := validation.NewChain[shipment.Package](dimensions).Link(weight)
//	result := chain.Validate(pkg)
//	if !result.IsValid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
package validation
