package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/recrsn/addonstub/internal/convert"
)

// BuildReport summarizes a conversion as markdown
func BuildReport(input, output string, result *convert.Result) string {
	var b strings.Builder

	b.WriteString("# Conversion report\n\n")
	fmt.Fprintf(&b, "- Input: `%s`\n", input)
	fmt.Fprintf(&b, "- Output: `%s`\n", output)
	fmt.Fprintf(&b, "- Blocks in init span: %d\n", result.Blocks)
	fmt.Fprintf(&b, "- Public blocks: %d\n", result.Kept)
	fmt.Fprintf(&b, "- Entries written: %d\n", len(result.Entries))

	counts := make(map[convert.Shape]int)
	for _, e := range result.Entries {
		counts[e.Shape]++
	}
	if len(counts) > 0 {
		shapes := make([]string, 0, len(counts))
		for shape := range counts {
			shapes = append(shapes, string(shape))
		}
		sort.Strings(shapes)

		b.WriteString("\n## Entries by shape\n\n")
		for _, shape := range shapes {
			fmt.Fprintf(&b, "- %s: %d\n", shape, counts[convert.Shape(shape)])
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n## Left out\n\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- `%s` (%s)\n", w.Declaration, w.Kind)
		}
	}

	return b.String()
}
