package convert

import (
	"fmt"
	"regexp"
	"strings"
)

// Indentation the segmenter treats as structure. Declarations of the init
// callback start at TopLevelIndent; a doc comment paragraph continues at
// DocContinuationIndent. Anything else starting a paragraph belongs to the
// declaration above it.
const (
	TopLevelIndent        = 4
	DocContinuationIndent = 5
)

var (
	topLevelStart   = regexp.MustCompile(fmt.Sprintf(`^ {%d}[^ ]`, TopLevelIndent))
	docContinuation = regexp.MustCompile(fmt.Sprintf(`^ {%d}\* `, DocContinuationIndent))
)

// startsBlock reports whether a paragraph opens a new declaration unit
func startsBlock(firstLine string) bool {
	return topLevelStart.MatchString(firstLine) || docContinuation.MatchString(firstLine)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// naiveBlocks splits body into maximal runs of non-blank lines
func naiveBlocks(body string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(body, "\n") {
		if isBlank(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// Segment partitions body into declaration blocks. A paragraph that does not
// start at top-level indentation is merged into the previous block, separated
// by a single empty line.
func Segment(body string) []Block {
	naive := naiveBlocks(body)
	blocks := make([]Block, 0, len(naive))

	for i := 0; i < len(naive); i++ {
		lines := append([]string(nil), naive[i]...)

		for i+1 < len(naive) && !startsBlock(naive[i+1][0]) {
			lines = append(lines, "")
			lines = append(lines, naive[i+1]...)
			i++
		}

		blocks = append(blocks, Block{Lines: lines})
	}

	return blocks
}
