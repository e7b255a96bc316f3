package validation

// Validator checks one kind of record.
// Implementations hold no per-call state and are safe for concurrent use.
type Validator[T any] interface {
	Validate(record T) Result
}

// Func adapts a plain function to Validator.
type Func[T any] func(record T) Result

func (f Func[T]) Validate(record T) Result {
	return f(record)
}

// Rule is a single check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error Error
}

// Apply evaluates every rule and collects the errors of those that fail.
// Rules are independent; a failing rule does not stop the others.
func Apply(rules ...Rule) Result {
	var errs []Error
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	return NewResult(errs...)
}
