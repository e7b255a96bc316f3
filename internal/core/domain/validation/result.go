package validation

import (
	"fmt"
	"slices"
)

// Error describes one rule violation on one field of a record.
type Error struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Code    string `json:"code" yaml:"code"`
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

// Result is the outcome of validating a record.
// IsValid is true iff Errors is empty; build results with Valid or NewResult
// to keep the two in sync.
type Result struct {
	IsValid bool    `json:"isValid" yaml:"isValid"`
	Errors  []Error `json:"errors" yaml:"errors"`
}

// Valid returns a passing result with an empty, non-nil error list.
func Valid() Result {
	return Result{IsValid: true, Errors: []Error{}}
}

// NewResult returns a result holding a copy of errs.
func NewResult(errs ...Error) Result {
	if len(errs) == 0 {
		return Valid()
	}
	return Result{IsValid: false, Errors: slices.Clone(errs)}
}

// normalize rebuilds r so that IsValid agrees with Errors.
func (r Result) normalize() Result {
	return NewResult(r.Errors...)
}

func (r Result) HasField(field string) bool {
	return slices.ContainsFunc(r.Errors, func(e Error) bool { return e.Field == field })
}

// FieldErrors returns the errors reported for field, in order.
func (r Result) FieldErrors(field string) []Error {
	var out []Error
	for _, e := range r.Errors {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the messages reported for field, in order.
func (r Result) Messages(field string) []string {
	var out []string
	for _, e := range r.FieldErrors(field) {
		out = append(out, e.Message)
	}
	return out
}

// ForField narrows r to the errors of a single field.
func (r Result) ForField(field string) Result {
	return NewResult(r.FieldErrors(field)...)
}

// Fields returns the distinct fields with errors, in first-seen order.
func (r Result) Fields() []string {
	var fields []string
	for _, e := range r.Errors {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Codes returns the error codes in order.
func (r Result) Codes() []string {
	codes := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}
