package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/recrsn/addonstub/internal/config"
	"github.com/recrsn/addonstub/internal/convert"
	"github.com/recrsn/addonstub/internal/outline"
	"github.com/recrsn/addonstub/internal/stubfile"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
)

func plainUI(out *bytes.Buffer) *TerminalUI {
	cfg := config.DefaultConfig().UI
	cfg.ColorEnabled = false
	return NewTerminalUI(cfg, out)
}

func TestPrintNextStep(t *testing.T) {
	var out bytes.Buffer
	plainUI(&out).PrintNextStep("p5.play.js")

	assert.Equal(t,
		"Done.\nNow run: `tsc --declaration --allowJs --emitDeclarationOnly p5.play.js`\n",
		out.String())
}

func TestPrintMessages(t *testing.T) {
	var out bytes.Buffer
	u := plainUI(&out)

	u.PrintInfo("reading")
	u.PrintWarning("dropped")
	u.PrintError("failed")
	u.PrintSuccess("written")

	text := out.String()
	for _, want := range []string{"reading", "dropped", "failed", "written"} {
		assert.Contains(t, text, want)
	}
}

func TestPrintMembers(t *testing.T) {
	var out bytes.Buffer
	u := plainUI(&out)

	u.PrintMembers(nil)
	assert.Empty(t, out.String())

	u.PrintMembers([]outline.Member{{Name: "jump", Kind: "function", Line: 4}})
	assert.Contains(t, out.String(), "jump")
	assert.Contains(t, out.String(), "function")
}

func TestPrintDiff(t *testing.T) {
	var out bytes.Buffer
	u := plainUI(&out)

	u.PrintDiff(&stubfile.Change{Path: "p5.play.js", Inserted: 12})
	assert.Contains(t, out.String(), "Created p5.play.js (12 lines)")

	out.Reset()
	u.PrintDiff(&stubfile.Change{Path: "p5.play.js", Existed: true})
	assert.Contains(t, out.String(), "p5.play.js is unchanged")

	out.Reset()
	u.PrintDiff(&stubfile.Change{
		Path:     "p5.play.js",
		Existed:  true,
		Inserted: 1,
		Deleted:  1,
		Diffs: []diffmatchpatch.Diff{
			{Type: diffmatchpatch.DiffEqual, Text: "keep\n"},
			{Type: diffmatchpatch.DiffDelete, Text: "old\n"},
			{Type: diffmatchpatch.DiffInsert, Text: "new\n"},
		},
	})
	assert.Contains(t, out.String(), "(+1 -1 lines)")
	assert.Contains(t, out.String(), "- old\n")
	assert.Contains(t, out.String(), "+ new\n")
	assert.NotContains(t, out.String(), "keep")
}

func TestFormatDiffLimit(t *testing.T) {
	pterm.DisableColor()

	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffInsert, Text: "a\nb\nc\n"},
	}

	assert.Equal(t, "+ a\n+ b\n... 1 more changed lines\n", formatDiff(diffs, 2))
}

func TestBuildReport(t *testing.T) {
	result := &convert.Result{
		Blocks: 5,
		Kept:   4,
		Entries: []convert.Entry{
			{Name: "a", Shape: convert.ShapeFunction},
			{Name: "b", Shape: convert.ShapeFunction},
			{Name: "C", Shape: convert.ShapeClass},
		},
		Warnings: []convert.Warning{
			{Kind: convert.WarningDroppedNestedPath, Declaration: "this.Sprite.prototype.x ="},
		},
	}

	report := BuildReport("play_raw.js", "p5.play.js", result)

	assert.Contains(t, report, "- Entries written: 3\n")
	assert.Contains(t, report, "- class: 1\n- function: 2\n")
	assert.Contains(t, report, "`this.Sprite.prototype.x =` (dropped-nested-path)")
	assert.True(t, strings.HasPrefix(report, "# Conversion report\n"))
}

func TestPrintReportDisabled(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig().UI
	cfg.ColorEnabled = false
	cfg.ShowReport = false

	NewTerminalUI(cfg, &out).PrintReport("# Title\n")
	assert.Empty(t, out.String())
}
