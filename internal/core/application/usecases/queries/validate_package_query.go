package queries

import (
	"errors"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/pkg/guard"
)

var (
	ErrValidatePackageQueryIsNotConstructed = errors.New(
		"ValidatePackageQuery must be created via NewValidatePackageQuery constructor",
	)
)

// ValidatePackageQuery asks for the validation of a package's dimensions and weight.
type ValidatePackageQuery struct {
	pkg shipment.Package

	guard guard.ConstructorGuard
}

func NewValidatePackageQuery(pkg shipment.Package) ValidatePackageQuery {
	return ValidatePackageQuery{pkg: pkg, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ValidatePackageQuery) Validate() error {
	return q.guard.Validate(ErrValidatePackageQueryIsNotConstructed)
}

func (q ValidatePackageQuery) Package() shipment.Package {
	return q.pkg
}
