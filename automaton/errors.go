package automaton

import "errors"

var (
	// ErrEmptyDefinition indicates that a definition document had no content.
	ErrEmptyDefinition = errors.New("definition is empty")
	// ErrNameRequired indicates that a definition name is required.
	ErrNameRequired = errors.New("definition name is required")
	// ErrStateNameRequired indicates that a start or final state has no name.
	ErrStateNameRequired = errors.New("state name is required")
	// ErrTransitionFromRequired indicates that a transition from state is required.
	ErrTransitionFromRequired = errors.New("transition from state is required")
	// ErrTransitionToRequired indicates that a transition to state is required.
	ErrTransitionToRequired = errors.New("transition to state is required")
	// ErrInvalidSymbol indicates that a transition symbol is not exactly one rune.
	ErrInvalidSymbol = errors.New("transition symbol must be exactly one character")
	// ErrDuplicateSymbol indicates that the alphabet lists a symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")
)
