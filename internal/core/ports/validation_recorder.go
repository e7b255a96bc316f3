// Package ports defines the interfaces the application core expects from
// infrastructure adapters.
package ports

import (
	"context"

	"ratecalc/internal/core/domain/validation"
)

// Chain names passed to ValidationRecorder.
const (
	ChainAddress         = "address"
	ChainPackage         = "package"
	ChainShippingOptions = "shipping_options"
)

// ValidationRecorder observes the outcome of every chain evaluation.
// Implementations must be safe for concurrent use and must not block.
type ValidationRecorder interface {
	RecordValidation(ctx context.Context, chain string, result validation.Result)
}
