package convert

import (
	"fmt"
	"strings"
)

const (
	moduleOpen  = "module.exports = {\n    '%s' : {"
	moduleClose = "\n\n    }\n}"
)

// Assemble wraps entries in the module literal exposing namespace. The comma
// trailing the last entry is dropped.
func Assemble(entries []Entry, namespace string) string {
	var body strings.Builder
	for _, e := range entries {
		body.WriteString("\n\n")
		body.WriteString(e.Text)
	}

	return fmt.Sprintf(moduleOpen, namespace) +
		strings.TrimSuffix(body.String(), ",") +
		moduleClose
}
