package queries_test

import (
	"context"
	"testing"

	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/core/domain/model/shipment"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/domain/validators"
	"ratecalc/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateAddressQueryHandler_Handle(t *testing.T) {
	chain := validators.NewAddressValidationChain()

	t.Run("should return valid result and record it", func(t *testing.T) {
		ctx := t.Context()
		recorder := new(MockValidationRecorder)
		recorder.On("RecordValidation", ctx, ports.ChainAddress, validation.Valid()).Once()

		h := queries.NewValidateAddressQueryHandler(chain, recorder)
		query, _ := queries.NewValidateAddressQuery(newUKAddress(), "")

		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		recorder.AssertExpectations(t)
	})

	t.Run("should return every error of the failing stage", func(t *testing.T) {
		address := newUSAddress()
		address.Street1 = ""
		address.City = ""

		h := queries.NewValidateAddressQueryHandler(chain, nil)
		query, _ := queries.NewValidateAddressQuery(address, "")

		result, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, []string{shipment.FieldStreet1, shipment.FieldCity}, result.Fields())
	})

	t.Run("should narrow the result to the requested field", func(t *testing.T) {
		ctx := t.Context()
		address := newUSAddress()
		address.Street1 = ""
		address.City = ""

		recorder := new(MockValidationRecorder)
		recorder.On("RecordValidation", ctx, ports.ChainAddress, mock.MatchedBy(func(r validation.Result) bool {
			return len(r.Errors) == 2
		})).Once()

		h := queries.NewValidateAddressQueryHandler(chain, recorder)
		query, _ := queries.NewValidateAddressQuery(address, shipment.FieldCity)

		result, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, shipment.FieldCity, result.Errors[0].Field)
		recorder.AssertExpectations(t)
	})

	t.Run("should report a field as valid when other fields fail", func(t *testing.T) {
		address := newUSAddress()
		address.Street1 = ""

		h := queries.NewValidateAddressQueryHandler(chain, nil)
		query, _ := queries.NewValidateAddressQuery(address, shipment.FieldPostalCode)

		result, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("should pass the address to the chain", func(t *testing.T) {
		address := newUSAddress()
		mockChain := new(MockAddressValidator)
		mockChain.On("Validate", address).Return(validation.Valid()).Once()

		h := queries.NewValidateAddressQueryHandler(mockChain, nil)
		query, _ := queries.NewValidateAddressQuery(address, "")

		_, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		mockChain.AssertExpectations(t)
	})

	t.Run("should reject a query not built by its constructor", func(t *testing.T) {
		mockChain := new(MockAddressValidator)
		h := queries.NewValidateAddressQueryHandler(mockChain, nil)

		_, err := h.Handle(t.Context(), queries.ValidateAddressQuery{})

		require.ErrorIs(t, err, queries.ErrValidateAddressQueryIsNotConstructed)
		mockChain.AssertNotCalled(t, "Validate", mock.Anything)
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		mockChain := new(MockAddressValidator)
		h := queries.NewValidateAddressQueryHandler(mockChain, nil)
		query, _ := queries.NewValidateAddressQuery(newUSAddress(), "")

		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, context.Canceled)
		mockChain.AssertNotCalled(t, "Validate", mock.Anything)
	})
}
