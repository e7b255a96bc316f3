package queries

import (
	"context"

	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/ports"
)

// ValidateAddressQueryHandler runs an address through the address validation chain.
// The recorder may be nil.
type ValidateAddressQueryHandler struct {
	chain    validation.Validator[shipment.Address]
	recorder ports.ValidationRecorder
}

func NewValidateAddressQueryHandler(
	chain validation.Validator[shipment.Address],
	recorder ports.ValidationRecorder,
) ValidateAddressQueryHandler {
	return ValidateAddressQueryHandler{
		chain:    chain,
		recorder: recorder,
	}
}

// Handle validates the address. The recorder always sees the full result,
// the caller gets it narrowed to the query's field when one is set.
func (h ValidateAddressQueryHandler) Handle(ctx context.Context, query ValidateAddressQuery) (validation.Result, error) {
	if err := query.Validate(); err != nil {
		return validation.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return validation.Result{}, err
	}

	result := h.chain.Validate(query.Address())
	record(ctx, h.recorder, ports.ChainAddress, result)

	if query.Field() != "" {
		return result.ForField(query.Field()), nil
	}
	return result, nil
}

func record(ctx context.Context, recorder ports.ValidationRecorder, chain string, result validation.Result) {
	if recorder != nil {
		recorder.RecordValidation(ctx, chain, result)
	}
}
