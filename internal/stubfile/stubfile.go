// Package stubfile reads addon sources and writes generated stubs.
package stubfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrEmptyInput is returned when the input file has no content
var ErrEmptyInput = errors.New("input is empty")

// Read returns the contents of the addon source at path
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not get contents of %s: %w", path, err)
	}

	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("could not get contents of %s: %w", path, ErrEmptyInput)
	}

	return string(content), nil
}

// Change describes how a write altered the file on disk
type Change struct {
	Path string
	// Existed is false when the file was created
	Existed bool
	// Inserted and Deleted count lines
	Inserted int
	Deleted  int
	Diffs    []diffmatchpatch.Diff
}

// Unchanged reports whether the file already held the written content
func (c *Change) Unchanged() bool {
	return c.Existed && c.Inserted == 0 && c.Deleted == 0
}

// Write stores content at path, creating parent directories, and reports the
// change against the previous file.
func Write(path, content string) (*Change, error) {
	change := &Change{Path: path}

	previous, err := os.ReadFile(path)
	switch {
	case err == nil:
		change.Existed = true
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read previous output: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	change.Diffs = DiffLines(string(previous), content)
	for _, d := range change.Diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			change.Inserted += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			change.Deleted += countLines(d.Text)
		}
	}

	return change, nil
}

// DiffLines computes a line-level diff between two texts
func DiffLines(oldText, newText string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()

	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldChars, newChars, false)

	return dmp.DiffCharsToLines(diffs, lines)
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
