package guard_test

import (
	"errors"
	"sync"
	"testing"

	"ratecalc/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass when constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return given error for zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("query not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("should return default error for zero value and nil error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("should survive copy by value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	errQueryNotConstructed := errors.New("query must be created via newQuery")

	type query struct {
		field string
		guard guard.ConstructorGuard
	}
	newQuery := func(field string) query {
		return query{field: field, guard: guard.NewConstructorGuard()}
	}

	t.Run("should validate constructed value", func(t *testing.T) {
		q := newQuery("city")

		require.NoError(t, q.guard.Validate(errQueryNotConstructed))
		assert.Equal(t, "city", q.field)
	})

	t.Run("should reject literal value", func(t *testing.T) {
		q := query{field: "city"}

		require.ErrorIs(t, q.guard.Validate(errQueryNotConstructed), errQueryNotConstructed)
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}
