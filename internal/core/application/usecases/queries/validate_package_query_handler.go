package queries

import (
	"context"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/ports"
)

// ValidatePackageQueryHandler runs a package through the package validation chain.
type ValidatePackageQueryHandler struct {
	chain    validation.Validator[shipment.Package]
	recorder ports.ValidationRecorder
}

func NewValidatePackageQueryHandler(
	chain validation.Validator[shipment.Package],
	recorder ports.ValidationRecorder,
) ValidatePackageQueryHandler {
	return ValidatePackageQueryHandler{
		chain:    chain,
		recorder: recorder,
	}
}

func (h ValidatePackageQueryHandler) Handle(ctx context.Context, query ValidatePackageQuery) (validation.Result, error) {
	if err := query.Validate(); err != nil {
		return validation.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return validation.Result{}, err
	}

	result := h.chain.Validate(query.Package())
	record(ctx, h.recorder, ports.ChainPackage, result)
	return result, nil
}
