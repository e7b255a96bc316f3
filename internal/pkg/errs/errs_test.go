package errs_test

import (
	"errors"
	"testing"

	"ratecalc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("field")

		assert.Equal(t, "field", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: field", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown address field \"zip\"")
		err := errs.NewValueIsInvalidErrorWithCause("field", cause)

		assert.Equal(t, "field", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: field (cause: unknown address field \"zip\")", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitizes newlines in cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("body", errors.New("line one\nline two"))

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("package")

		assert.Equal(t, "package", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: package", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("section missing")
		err := errs.NewValueIsRequiredErrorWithCause("origin", cause)

		assert.Equal(t, "origin", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: origin (cause: section missing)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})

	t.Run("errors.Is works with wrapped custom errors", func(t *testing.T) {
		invalid := errs.NewValueIsInvalidError("field")
		required := errs.NewValueIsRequiredError("origin")

		require.ErrorIs(t, invalid, errs.ErrValueIsInvalid)
		require.ErrorIs(t, required, errs.ErrValueIsRequired)
		require.ErrorIs(t, errors.Join(invalid, required), errs.ErrValueIsRequired)
		assert.NotErrorIs(t, invalid, errs.ErrValueIsRequired)
	})

	t.Run("errors.As extracts the parameter name", func(t *testing.T) {
		var target *errs.ValueIsInvalidError
		err := errors.Join(errs.NewValueIsInvalidError("field"))

		require.ErrorAs(t, err, &target)
		assert.Equal(t, "field", target.ParamName)
	})
}
