package regex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	amperrors "github.com/amp-labs/automaat/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDefinition indicates that a definitions document had no content.
	ErrEmptyDefinition = errors.New("definitions are empty")
	// ErrNameRequired indicates that an expression has no name.
	ErrNameRequired = errors.New("expression name is required")
	// ErrDuplicateName indicates that two expressions share a name.
	ErrDuplicateName = errors.New("duplicate expression name")
	// ErrNoOperator indicates that a node sets none of literal, plus, star, or, dot.
	ErrNoOperator = errors.New("node must set one of literal, plus, star, or, dot")
	// ErrMultipleOperators indicates that a node sets more than one operator.
	ErrMultipleOperators = errors.New("node must set exactly one operator")
	// ErrOperandCount indicates that or/dot has fewer than two operands.
	ErrOperandCount = errors.New("or and dot need at least two operands")
	// ErrExpressionNotFound indicates that no expression has the requested name.
	ErrExpressionNotFound = errors.New("expression not found")
)

// Node is the YAML form of an expression tree. Exactly one field is set.
// Or and Dot with more than two operands associate to the left.
//
//	{or: [{literal: a}, {dot: [{literal: b}, {star: {literal: c}}]}]}
type Node struct {
	Literal *string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Plus    *Node   `json:"plus,omitempty"    yaml:"plus,omitempty"`
	Star    *Node   `json:"star,omitempty"    yaml:"star,omitempty"`
	Or      []Node  `json:"or,omitempty"      yaml:"or,omitempty"`
	Dot     []Node  `json:"dot,omitempty"     yaml:"dot,omitempty"`
}

// NamedExpression pairs a name with its tree.
type NamedExpression struct {
	Name string `json:"name" yaml:"name"`
	Expr Node   `json:"expr" yaml:"expr"`
}

// Definitions is a document of named expressions:
//
//	expressions:
//	  - name: a-star
//	    expr: {star: {literal: a}}
type Definitions struct {
	Expressions []NamedExpression `json:"expressions" yaml:"expressions"`
}

// LoadDefinitions reads and validates a definitions file.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %q: %w", path, err)
	}

	return LoadDefinitionsFromBytes(data)
}

// LoadDefinitionsFromFS reads definitions from fsys, e.g. an embed.FS.
func LoadDefinitionsFromFS(fsys fs.FS, path string) (*Definitions, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions from FS: %w", err)
	}

	return LoadDefinitionsFromBytes(data)
}

// LoadDefinitionsFromBytes parses and validates YAML definitions.
func LoadDefinitionsFromBytes(data []byte) (*Definitions, error) {
	var defs Definitions

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := defs.Validate(); err != nil {
		return nil, err
	}

	return &defs, nil
}

// Validate reports every problem across all expressions.
func (d *Definitions) Validate() error {
	var errs amperrors.Collection

	seen := make(map[string]bool)

	for i, named := range d.Expressions {
		switch {
		case named.Name == "":
			errs.Addf("expression %d: %w", i, ErrNameRequired)
		case seen[named.Name]:
			errs.Addf("expression %d: %w: %s", i, ErrDuplicateName, named.Name)
		}

		seen[named.Name] = true

		named.Expr.validate(fmt.Sprintf("expression %q", named.Name), &errs)
	}

	return errs.GetError()
}

// Names returns the expression names in document order.
func (d *Definitions) Names() []string {
	names := make([]string, 0, len(d.Expressions))
	for _, named := range d.Expressions {
		names = append(names, named.Name)
	}

	return names
}

// Lookup returns the tree definition for name.
func (d *Definitions) Lookup(name string) (Node, bool) {
	for _, named := range d.Expressions {
		if named.Name == name {
			return named.Expr, true
		}
	}

	return Node{}, false
}

// Build constructs the expression called name.
func (d *Definitions) Build(name string) (*Expression, error) {
	node, ok := d.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrExpressionNotFound, name, d.Names())
	}

	return node.Build()
}

// Build validates the node and constructs the expression it describes.
func (n Node) Build() (*Expression, error) {
	var errs amperrors.Collection

	n.validate("expression", &errs)

	if err := errs.GetError(); err != nil {
		return nil, err
	}

	return n.build(), nil
}

func (n Node) build() *Expression {
	switch {
	case n.Literal != nil:
		return Literal(*n.Literal)
	case n.Plus != nil:
		return n.Plus.build().Plus()
	case n.Star != nil:
		return n.Star.build().Star()
	case len(n.Or) > 0:
		e := n.Or[0].build()
		for _, operand := range n.Or[1:] {
			e = e.Or(operand.build())
		}

		return e
	default:
		e := n.Dot[0].build()
		for _, operand := range n.Dot[1:] {
			e = e.Dot(operand.build())
		}

		return e
	}
}

func (n Node) validate(path string, errs *amperrors.Collection) {
	count := 0

	if n.Literal != nil {
		count++
	}

	if n.Plus != nil {
		count++

		n.Plus.validate(path+".plus", errs)
	}

	if n.Star != nil {
		count++

		n.Star.validate(path+".star", errs)
	}

	if n.Or != nil {
		count++

		validateOperands(path+".or", n.Or, errs)
	}

	if n.Dot != nil {
		count++

		validateOperands(path+".dot", n.Dot, errs)
	}

	switch {
	case count == 0:
		errs.Addf("%s: %w", path, ErrNoOperator)
	case count > 1:
		errs.Addf("%s: %w", path, ErrMultipleOperators)
	}
}

func validateOperands(path string, operands []Node, errs *amperrors.Collection) {
	if len(operands) < 2 { //nolint:mnd
		errs.Addf("%s: %w: got %d", path, ErrOperandCount, len(operands))
	}

	for i, operand := range operands {
		operand.validate(fmt.Sprintf("%s[%d]", path, i), errs)
	}
}
