package ui

import (
	"fmt"
	"io"
	"strings"

	md "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/recrsn/addonstub/internal/config"
	"github.com/recrsn/addonstub/internal/outline"
	"github.com/recrsn/addonstub/internal/stubfile"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// maxDiffLines caps the changed lines echoed after a write
const maxDiffLines = 40

var commandStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#32CD32"))

// TerminalUI prints run progress with pterm
type TerminalUI struct {
	config config.UIConfig
	out    io.Writer
}

// NewTerminalUI creates a new TerminalUI instance
func NewTerminalUI(cfg config.UIConfig, out io.Writer) *TerminalUI {
	// Configure PTerm based on config
	if !cfg.ColorEnabled {
		pterm.DisableColor()
	}

	return &TerminalUI{config: cfg, out: out}
}

// PrintInfo prints an informational message
func (u *TerminalUI) PrintInfo(message string) {
	pterm.Info.WithWriter(u.out).Println(message)
}

// PrintSuccess prints a success message
func (u *TerminalUI) PrintSuccess(message string) {
	pterm.Success.WithWriter(u.out).Println(message)
}

// PrintWarning prints a warning message
func (u *TerminalUI) PrintWarning(message string) {
	pterm.Warning.WithWriter(u.out).Println(message)
}

// PrintError prints an error message
func (u *TerminalUI) PrintError(message string) {
	pterm.Error.WithWriter(u.out).Println(message)
}

// PrintMembers prints the members of the written stub as a table
func (u *TerminalUI) PrintMembers(members []outline.Member) {
	if len(members) == 0 {
		return
	}

	table := pterm.TableData{{"Line", "Member", "Kind"}}
	for _, m := range members {
		table = append(table, []string{fmt.Sprint(m.Line), m.Name, m.Kind})
	}

	err := pterm.DefaultTable.WithHasHeader().WithData(table).WithWriter(u.out).Render()
	if err != nil {
		u.PrintError("Error rendering members: " + err.Error())
	}
}

// PrintDiff summarizes a write and, when enabled, echoes the changed lines
func (u *TerminalUI) PrintDiff(change *stubfile.Change) {
	if change == nil {
		return
	}

	switch {
	case !change.Existed:
		u.PrintInfo(fmt.Sprintf("Created %s (%d lines)", change.Path, change.Inserted))
		return
	case change.Unchanged():
		u.PrintInfo(fmt.Sprintf("%s is unchanged", change.Path))
		return
	}

	u.PrintInfo(fmt.Sprintf("Updated %s (+%d -%d lines)", change.Path, change.Inserted, change.Deleted))
	if !u.config.ShowDiff {
		return
	}

	fmt.Fprint(u.out, formatDiff(change.Diffs, maxDiffLines))
}

// PrintReport renders a markdown report
func (u *TerminalUI) PrintReport(markdown string) {
	if !u.config.ShowReport {
		return
	}
	fmt.Fprintln(u.out, string(md.Render(markdown, 80, 0)))
}

// PrintNextStep tells the user how to extract declarations from the stub
func (u *TerminalUI) PrintNextStep(output string) {
	command := "`" + NextStepCommand(output) + "`"
	if u.config.ColorEnabled {
		command = commandStyle.Render(command)
	}
	fmt.Fprintf(u.out, "Done.\nNow run: %s\n", command)
}

// NextStepCommand is the declaration extractor invocation for output
func NextStepCommand(output string) string {
	return "tsc --declaration --allowJs --emitDeclarationOnly " + output
}

// formatDiff renders inserted and deleted lines with +/- markers, at most limit lines
func formatDiff(diffs []diffmatchpatch.Diff, limit int) string {
	var b strings.Builder
	shown, hidden := 0, 0

	for _, d := range diffs {
		var marker string
		var color pterm.Color
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker, color = "+ ", pterm.FgGreen
		case diffmatchpatch.DiffDelete:
			marker, color = "- ", pterm.FgRed
		default:
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if shown >= limit {
				hidden++
				continue
			}
			b.WriteString(color.Sprint(marker+line) + "\n")
			shown++
		}
	}

	if hidden > 0 {
		b.WriteString(fmt.Sprintf("... %d more changed lines\n", hidden))
	}
	return b.String()
}
