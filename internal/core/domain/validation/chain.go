package validation

import "slices"

// Chain is an immutable, ordered sequence of validators.
// Validate stops at the first stage that reports errors and returns that
// stage's result; later stages never see the record. A Chain is itself a
// Validator, so chains can be nested. The zero value is an empty chain that
// accepts every record.
type Chain[T any] struct {
	stages []Validator[T]
}

// NewChain returns a chain running stages in the given order. Nil stages are skipped.
func NewChain[T any](stages ...Validator[T]) Chain[T] {
	c := Chain[T]{stages: make([]Validator[T], 0, len(stages))}
	for _, s := range stages {
		if s != nil {
			c.stages = append(c.stages, s)
		}
	}
	return c
}

// Link returns a new chain with next appended after the existing stages.
// The receiver is left untouched, so one base chain can be extended in
// several directions.
func (c Chain[T]) Link(next Validator[T]) Chain[T] {
	if next == nil {
		return c
	}
	return Chain[T]{stages: append(slices.Clip(c.stages), next)}
}

// Len returns the number of stages.
func (c Chain[T]) Len() int {
	return len(c.stages)
}

func (c Chain[T]) Validate(record T) Result {
	for _, stage := range c.stages {
		if result := stage.Validate(record).normalize(); !result.IsValid {
			return result
		}
	}
	return Valid()
}
