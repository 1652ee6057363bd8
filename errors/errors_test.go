package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errMissingFrom = errors.New("transition from state is required")
	errBadSymbol   = errors.New("invalid symbol")
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errMissingFrom)

		assert.Same(t, errMissingFrom, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errMissingFrom)
		c.Addf("transition %d: %w: %q", 2, errBadSymbol, "ab")

		err := c.GetError()
		require.Error(t, err)
		assert.Equal(t, 2, c.Len())
		require.ErrorIs(t, err, errMissingFrom)
		require.ErrorIs(t, err, errBadSymbol)
		assert.Contains(t, err.Error(), `transition 2: invalid symbol: "ab"`)
	})

	t.Run("Clear resets", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errBadSymbol)
		c.Clear()

		assert.False(t, c.HasError())
	})
}
