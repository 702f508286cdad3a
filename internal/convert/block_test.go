package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclarationIndex(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		index   int
		ok      bool
		trimmed string
	}{
		{
			name:    "no doc comment",
			lines:   []string{"    this.a = 1;"},
			index:   0,
			ok:      true,
			trimmed: "this.a = 1;",
		},
		{
			name:    "after doc comment",
			lines:   []string{"    /**", "     * doc", "     */", "    this.jump = function () {", "    };"},
			index:   3,
			ok:      true,
			trimmed: "this.jump = function () {",
		},
		{
			name:    "block comment opener",
			lines:   []string{"    /* note */", "    this.b = 2;"},
			index:   1,
			ok:      true,
			trimmed: "this.b = 2;",
		},
		{
			name:  "comment only",
			lines: []string{"    /**", "     * dangling", "     */"},
			index: 3,
			ok:    false,
		},
		{
			name:    "unindented star is not a comment line",
			lines:   []string{"*weird", "    this.c = 3;"},
			index:   0,
			ok:      true,
			trimmed: "*weird",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Block{Lines: tc.lines}

			index, ok := b.DeclarationIndex()
			assert.Equal(t, tc.index, index)
			assert.Equal(t, tc.ok, ok)

			line, ok := b.DeclarationLine()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.trimmed, line)
		})
	}
}

func TestFilterKeep(t *testing.T) {
	filter := NewFilter(DefaultOptions())

	tests := []struct {
		line string
		keep bool
	}{
		{"    this.jump = function(){};", true},
		{"    this.Sprite = class {", true},
		{"    this.getFPS ??= () => this.p5play._fps;", true},
		{"    this._internal = 1;", false},
		{"    this.p5play.x = 1;", false},
		{"    this.p5play = {};", false},
		{"    this.angleMode(x);", false},
		{"    let local = 1;", false},
		{"    if (window.foo) {", false},
		{"    that.jump = 1;", false},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.keep, filter.Keep(Block{Lines: []string{tc.line}}))
		})
	}
}

func TestFilterUsesDeclarationLine(t *testing.T) {
	filter := NewFilter(DefaultOptions())

	documented := Block{Lines: []string{"    /**", "     * this.notADeclaration", "     */", "    this._private = 1;"}}
	assert.False(t, filter.Keep(documented))

	commentOnly := Block{Lines: []string{"    /**", "     */"}}
	assert.False(t, filter.Keep(commentOnly))
}

func TestFilterCustomSelf(t *testing.T) {
	opts := DefaultOptions()
	opts.Self = "$p"
	opts.ReservedPrefixes = []string{"$p.internal"}
	filter := NewFilter(opts)

	assert.True(t, filter.Keep(Block{Lines: []string{"    $p.draw = function () {"}}))
	assert.False(t, filter.Keep(Block{Lines: []string{"    $p.internal = {};"}}))
	assert.False(t, filter.Keep(Block{Lines: []string{"    $p._x = 1;"}}))
	assert.False(t, filter.Keep(Block{Lines: []string{"    this.draw = 1;"}}))
}
