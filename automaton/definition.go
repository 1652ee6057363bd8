package automaton

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	amperrors "github.com/amp-labs/automaat/errors"
	"github.com/amp-labs/automaat/sortable"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of an automaton with string states:
//
//	name: ab-loop
//	alphabet: ab
//	start: [q0]
//	final: [q0]
//	transitions:
//	  - {from: q0, symbol: a, to: q1}
//	  - {from: q1, symbol: b, to: q0}
type Definition struct {
	Name        string                 `json:"name"        yaml:"name"`
	Alphabet    string                 `json:"alphabet"    yaml:"alphabet"`
	Start       []string               `json:"start"       yaml:"start"`
	Final       []string               `json:"final"       yaml:"final"`
	Transitions []TransitionDefinition `json:"transitions" yaml:"transitions"`
}

// TransitionDefinition is one transition of a Definition. Symbol holds a
// single character.
type TransitionDefinition struct {
	From   string `json:"from"   yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to"     yaml:"to"`
}

// LoadDefinition reads and validates a definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %q: %w", path, err)
	}

	return LoadDefinitionFromBytes(data)
}

// LoadDefinitionFromFS reads a definition from fsys, e.g. an embed.FS.
func LoadDefinitionFromFS(fsys fs.FS, path string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition from FS: %w", err)
	}

	return LoadDefinitionFromBytes(data)
}

// LoadDefinitionFromBytes parses and validates a YAML definition.
// Unknown keys are rejected.
func LoadDefinitionFromBytes(data []byte) (*Definition, error) {
	var def Definition

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate reports every problem in the definition at once.
//
// Symbols missing from the alphabet are allowed, exactly as with
// AddTransition; inputs using them are simply rejected.
func (d *Definition) Validate() error {
	var errs amperrors.Collection

	if d.Name == "" {
		errs.Add(ErrNameRequired)
	}

	seen := make(map[rune]bool)
	for _, symbol := range d.Alphabet {
		if seen[symbol] {
			errs.Addf("%w: %q", ErrDuplicateSymbol, symbol)
		}

		seen[symbol] = true
	}

	for i, name := range d.Start {
		if name == "" {
			errs.Addf("start state %d: %w", i, ErrStateNameRequired)
		}
	}

	for i, name := range d.Final {
		if name == "" {
			errs.Addf("final state %d: %w", i, ErrStateNameRequired)
		}
	}

	for i, t := range d.Transitions {
		if t.From == "" {
			errs.Addf("transition %d: %w", i, ErrTransitionFromRequired)
		}

		if t.To == "" {
			errs.Addf("transition %d: %w", i, ErrTransitionToRequired)
		}

		if utf8.RuneCountInString(t.Symbol) != 1 {
			errs.Addf("transition %d: %w: %q", i, ErrInvalidSymbol, t.Symbol)
		}
	}

	return errs.GetError()
}

// Build validates the definition and constructs the automaton it describes.
func (d *Definition) Build() (*Automaton[sortable.String], error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition %q: %w", d.Name, err)
	}

	a := New[sortable.String]([]rune(d.Alphabet)...)

	for _, t := range d.Transitions {
		symbol, _ := utf8.DecodeRuneInString(t.Symbol)
		a.AddTransitionOf(sortable.String(t.From), symbol, sortable.String(t.To))
	}

	for _, name := range d.Start {
		a.DefineAsStartState(sortable.String(name))
	}

	for _, name := range d.Final {
		a.DefineAsFinalState(sortable.String(name))
	}

	return a, nil
}
