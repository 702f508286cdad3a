package main

import (
	"fmt"
	"os"

	"github.com/recrsn/addonstub/internal/app"
	"github.com/recrsn/addonstub/internal/config"
	"github.com/recrsn/addonstub/internal/platform"
	"github.com/recrsn/addonstub/internal/runlog"
	"github.com/recrsn/addonstub/internal/ui"
)

func main() {
	// Config is looked up in the working directory first
	searchPaths := []string{"."}

	dirs, err := platform.GetDirectories("addonstub")
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	} else {
		searchPaths = append(searchPaths, dirs.Config)
	}

	// Load configuration
	cfg, err := config.LoadConfig(searchPaths...)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		fmt.Println("Using default configuration")
		cfg = config.DefaultConfig()
	}

	userInterface := ui.NewUI(cfg.UI, os.Stdout)

	if err := app.Run(cfg, userInterface, newRunLogger(cfg.Log, dirs, userInterface)); err != nil {
		userInterface.PrintError(err.Error())
		os.Exit(1)
	}
}

// newRunLogger returns the configured run log, or a discarding one when it is
// disabled or cannot be opened.
func newRunLogger(cfg config.LogConfig, dirs *platform.Directories, out ui.UserInterface) runlog.Logger {
	if !cfg.Enabled {
		return runlog.Discard
	}

	dir := cfg.Dir
	if dir == "" {
		if dirs == nil {
			return runlog.Discard
		}
		dir = dirs.Data
	}

	logger, err := runlog.NewFileLogger(dir)
	if err != nil {
		out.PrintWarning(fmt.Sprintf("Run log disabled: %v", err))
		return runlog.Discard
	}
	return logger
}
