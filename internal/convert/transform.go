package convert

import (
	"regexp"
	"strings"
)

// Entry is one rewritten member, formatted for the module literal. Text ends
// with exactly one trailing comma.
type Entry struct {
	Name  string
	Shape Shape
	Text  string
}

// WarningKind classifies non-fatal conversion events
type WarningKind string

// WarningDroppedNestedPath is raised when a prototype-path assignment matched
// and was left out of the output.
const WarningDroppedNestedPath WarningKind = "dropped-nested-path"

// Warning signals that a kept block contributed nothing to the output
type Warning struct {
	Kind        WarningKind
	Declaration string
	Block       string
}

// Transformer rewrites kept blocks into object literal entries
type Transformer struct {
	rules       []Rule
	cleanup     *regexp.Regexp
	annotations []string
}

// NewTransformer builds a transformer with the rule table for opts.Self
func NewTransformer(opts Options) *Transformer {
	t := &Transformer{
		rules:       NewRules(opts.Self),
		annotations: opts.LegacyAnnotations,
	}

	if opts.CleanupKeyword != "" {
		t.cleanup = regexp.MustCompile(`(?m)^[ \t]*` +
			regexp.QuoteMeta(opts.CleanupKeyword+" "+opts.Self) +
			`.*$(?:\r\n|\r|\n)?`)
	}

	return t
}

// Rules exposes the rule table in evaluation order
func (t *Transformer) Rules() []Rule {
	return t.rules
}

// Transform rewrites a kept block. It returns no entries and a warning when a
// dropping rule matched, and an *UnmatchedShapeError when no rule did.
func (t *Transformer) Transform(b Block) ([]Entry, *Warning, error) {
	text := b.Text()

	// Remove runtime-only cleanup statements
	if t.cleanup != nil {
		text = t.cleanup.ReplaceAllString(text, "")
	}

	for _, annotation := range t.annotations {
		if annotation != "" {
			text = strings.ReplaceAll(text, annotation, "")
		}
	}

	lines := strings.Split(text, "\n")

	// Line removal may have moved the declaration
	idx, ok := Block{Lines: lines}.DeclarationIndex()
	if !ok {
		return nil, nil, &UnmatchedShapeError{Block: text}
	}
	declaration := lines[idx]

	for _, rule := range t.rules {
		rewrites, matched := rule.Apply(declaration)
		if !matched {
			continue
		}

		if len(rewrites) == 0 {
			return nil, &Warning{
				Kind:        WarningDroppedNestedPath,
				Declaration: strings.TrimSpace(declaration),
				Block:       text,
			}, nil
		}

		entries := make([]Entry, 0, len(rewrites))
		for _, rw := range rewrites {
			out := append([]string(nil), lines...)
			out[idx] = rw.Line
			entries = append(entries, Entry{
				Name:  rw.Name,
				Shape: rule.Shape,
				Text:  formatEntry(strings.Join(out, "\n")),
			})
		}
		return entries, nil, nil
	}

	return nil, nil, &UnmatchedShapeError{
		Declaration: strings.TrimSpace(declaration),
		Block:       text,
	}
}

// formatEntry drops the statement terminator and trailing newlines and marks
// the entry as an object literal property.
func formatEntry(text string) string {
	return strings.TrimRight(text, "\n;") + ","
}
