package ui

import (
	"io"

	"github.com/recrsn/addonstub/internal/config"
	"github.com/recrsn/addonstub/internal/outline"
	"github.com/recrsn/addonstub/internal/stubfile"
)

// UserInterface is what a conversion run reports through
type UserInterface interface {
	PrintInfo(message string)
	PrintSuccess(message string)
	PrintWarning(message string)
	PrintError(message string)
	PrintMembers(members []outline.Member)
	PrintDiff(change *stubfile.Change)
	PrintReport(markdown string)
	PrintNextStep(output string)
}

// NewUI creates a terminal UI writing to w
func NewUI(cfg config.UIConfig, w io.Writer) UserInterface {
	return NewTerminalUI(cfg, w)
}
