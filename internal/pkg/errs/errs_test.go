//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"eiffel-bike-client/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Parallel()

	t.Run("the mark is visible to plain errors.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("days out of range"), errs.ErrValidation)

		assert.True(t, errors.Is(err, errs.ErrValidation))
		assert.Equal(t, "days out of range", err.Error())
	})

	t.Run("the cause chain stays visible alongside the mark", func(t *testing.T) {
		cause := errs.New("bike already listed")
		err := errs.Mark(cause, errs.ErrDuplicateSaleOffer)

		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, errs.ErrDuplicateSaleOffer))
	})

	t.Run("wrapping a marked error keeps the mark", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("offer fetch failed"), errs.ErrNetwork), "failed to load sale offer")

		assert.True(t, errors.Is(err, errs.ErrNetwork))
	})

	t.Run("stacked marks are all visible", func(t *testing.T) {
		err := errs.Mark(errs.Mark(errs.New("token rejected"), errs.ErrAuthenticationFailed), errs.ErrInvalidCredentials)

		assert.True(t, errors.Is(err, errs.ErrInvalidCredentials))
		assert.True(t, errors.Is(err, errs.ErrAuthenticationFailed))
	})

	t.Run("an unrelated sentinel does not match", func(t *testing.T) {
		err := errs.Mark(errs.New("no session"), errs.ErrNoSession)

		assert.False(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrNotFound)

		assert.True(t, errors.Is(err, errs.ErrNotFound))
	})

	t.Run("verbose formatting still renders the cause chain", func(t *testing.T) {
		err := errs.Mark(errs.New("rate api down"), errs.ErrNetwork)

		rendered := fmt.Sprintf("%+v", err)
		require.Contains(t, rendered, "rate api down")
	})
}
