package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaiveBlocks(t *testing.T) {
	body := "\n\n    a\n    b\n\n  \t\n    c\n"

	blocks := naiveBlocks(body)
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"    a", "    b"}, blocks[0])
	assert.Equal(t, []string{"    c"}, blocks[1])
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name:     "blank body",
			body:     "\n   \n\n",
			expected: nil,
		},
		{
			name:     "top level declarations stay apart",
			body:     "\n    this.a = 1;\n\n    this.b = 2;\n",
			expected: []string{"    this.a = 1;", "    this.b = 2;"},
		},
		{
			name: "deeper paragraph merges into previous block",
			body: "    this.A = class {\n        a() {}\n\n        b() {}\n    };\n\n    this.c = 3;",
			expected: []string{
				"    this.A = class {\n        a() {}\n\n        b() {}\n    };",
				"    this.c = 3;",
			},
		},
		{
			name: "doc continuation starts a block",
			body: "    this.a = 1;\n\n     * orphan doc line\n    this.b = 2;",
			expected: []string{
				"    this.a = 1;",
				"     * orphan doc line\n    this.b = 2;",
			},
		},
		{
			name: "several merged paragraphs are joined by one empty line",
			body: "    this.f = function () {\n        x();\n\n\n\n        y();\n\n        z();\n    };",
			expected: []string{
				"    this.f = function () {\n        x();\n\n        y();\n\n        z();\n    };",
			},
		},
		{
			name:     "leading deeper paragraph still forms a block",
			body:     "        orphan();\n\n    this.a = 1;",
			expected: []string{"        orphan();", "    this.a = 1;"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blocks := Segment(tc.body)

			var got []string
			for _, b := range blocks {
				got = append(got, b.Text())
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestSegmentIsAPartition(t *testing.T) {
	body, _, err := Isolate(StripLineComments(sampleSource), sampleMarker)
	require.NoError(t, err)

	blocks := Segment(body)
	require.NotEmpty(t, blocks)

	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		assert.NotEqual(t, "", strings.TrimSpace(b.Lines[0]), "blocks never start blank")
		texts = append(texts, b.Text())
	}

	assert.Equal(t, nonBlankLines(body), nonBlankLines(strings.Join(texts, "\n\n")))
}

func TestStartsBlock(t *testing.T) {
	assert.True(t, startsBlock("    this.a = 1;"))
	assert.True(t, startsBlock("    /**"))
	assert.True(t, startsBlock("     * @param x"))
	assert.False(t, startsBlock("     *no space"))
	assert.False(t, startsBlock("        body();"))
	assert.False(t, startsBlock("  two();"))
	assert.False(t, startsBlock("     five();"))
}
