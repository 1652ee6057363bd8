package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordValidator(t *testing.T) {
	t.Parallel()

	assert.Nil(t, wordValidator(nil))

	validate := wordValidator([]rune("ab"))
	require.NotNil(t, validate)

	require.NoError(t, validate(""))
	require.NoError(t, validate("abba"))
	require.ErrorIs(t, validate("abc"), ErrSymbolNotInAlphabet)
	assert.Contains(t, validate("aXb").Error(), `'X'`)
}

func TestFinished(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, finished(promptui.ErrInterrupt), io.EOF)
	require.ErrorIs(t, finished(promptui.ErrEOF), io.EOF)

	other := errors.New("boom")
	assert.Equal(t, other, finished(other))
}

func TestNewPrompter(t *testing.T) {
	t.Parallel()

	p := NewPrompter()
	assert.NotNil(t, p.Stdin)
	assert.NotNil(t, p.Stdout)
}
