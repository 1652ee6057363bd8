package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/manifoldco/promptui"
)

// ErrSymbolNotInAlphabet is the validation error for words using unknown symbols.
var ErrSymbolNotInAlphabet = errors.New("symbol is not in the alphabet")

// Prompter asks questions on a terminal.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPrompter prompts on the process's own terminal.
func NewPrompter() *Prompter {
	return &Prompter{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// PromptWord reads one word. The empty word is a valid answer. When
// alphabet is non-empty, words with other symbols are refused before the
// prompt returns. Ctrl-C and Ctrl-D yield io.EOF.
func (p *Prompter) PromptWord(label string, alphabet []rune) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: wordValidator(alphabet),
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	word, err := prompt.Run()
	if err != nil {
		return "", finished(err)
	}

	return word, nil
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func (p *Prompter) PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, finished(err)
	}

	return true, nil
}

func wordValidator(alphabet []rune) promptui.ValidateFunc {
	if len(alphabet) == 0 {
		return nil
	}

	return func(s string) error {
		for _, r := range s {
			if !slices.Contains(alphabet, r) {
				return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, r)
			}
		}

		return nil
	}
}

func finished(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return io.EOF
	}

	return err
}
