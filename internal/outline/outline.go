// Package outline reads a generated stub back with tree-sitter and lists the
// members it declares.
package outline

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Member is one property of the namespace object
type Member struct {
	Name string
	// Kind is derived from the value: function, arrow, class, instance,
	// reference or the raw node kind
	Kind string
	// Line is 1-based
	Line int
}

// Outline is the structure of a stub module
type Outline struct {
	Namespace string
	Members   []Member
	// HasErrors is set when the stub does not parse cleanly
	HasErrors bool
}

// ErrNoModuleLiteral is returned when the stub has no `x = { ns: { ... } }` assignment
var ErrNoModuleLiteral = errors.New("no module literal found")

// ExtractOutline parses a stub and returns its namespace members
func ExtractOutline(content []byte) (*Outline, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(sitter.NewLanguage(javascript.Language())); err != nil {
		return nil, fmt.Errorf("error setting language parser: %w", err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New("parsing stub failed")
	}
	defer tree.Close()

	root := tree.RootNode()

	outline := extractJSOutline(root, content)
	if outline == nil {
		return &Outline{HasErrors: root.HasError()}, ErrNoModuleLiteral
	}
	outline.HasErrors = root.HasError()

	return outline, nil
}
