package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken")

type brokenHashable struct{}

func (brokenHashable) UpdateHash(_ hash.Hash) error {
	return errBroken
}

func TestXxh3(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := Xxh3(HashableString("q0\x1fa\x1fq1"))
		require.NoError(t, err)

		second, err := Xxh3(HashableString("q0\x1fa\x1fq1"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})

	t.Run("different inputs differ", func(t *testing.T) {
		t.Parallel()

		a, err := Xxh3(HashableString("a"))
		require.NoError(t, err)

		b, err := Xxh3(HashableString("b"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("propagates hashable errors", func(t *testing.T) {
		t.Parallel()

		_, err := Xxh3(brokenHashable{})
		require.ErrorIs(t, err, errBroken)
	})
}

func TestSha256(t *testing.T) {
	t.Parallel()

	sum, err := Sha256(HashableString("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = Sha256(brokenHashable{})
	require.ErrorIs(t, err, errBroken)
}
