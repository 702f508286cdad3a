package convert

import (
	"regexp"
	"strings"
)

var docCommentLine = regexp.MustCompile(`^ +(\*|/\*)`)

// Block is one declaration unit: an optional doc comment, the declaration
// line and its body.
type Block struct {
	Lines []string
}

// Text joins the block back into source text
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// DeclarationIndex returns the index of the first line that is not part of a
// leading doc comment. When the block is nothing but comment it returns
// len(b.Lines) and false.
func (b Block) DeclarationIndex() (int, bool) {
	i := 0
	for i < len(b.Lines) && docCommentLine.MatchString(b.Lines[i]) {
		i++
	}
	return i, i < len(b.Lines)
}

// DeclarationLine returns the trimmed declaration line
func (b Block) DeclarationLine() (string, bool) {
	i, ok := b.DeclarationIndex()
	if !ok {
		return "", false
	}
	return strings.TrimSpace(b.Lines[i]), true
}
