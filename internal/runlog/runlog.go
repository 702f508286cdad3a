// Package runlog keeps a JSONL history of conversion runs.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log file created inside the log directory
const FileName = "runs.jsonl"

// Logger records conversion runs
type Logger interface {
	LogRun(rec Record) error
}

// Record is a single log entry
type Record struct {
	Timestamp string   `json:"timestamp"`
	Input     string   `json:"input"`
	Output    string   `json:"output,omitempty"`
	Blocks    int      `json:"blocks"`
	Kept      int      `json:"kept"`
	Entries   int      `json:"entries"`
	Warnings  []string `json:"warnings,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// FileLogger appends records to a file
type FileLogger struct {
	logFilePath string
	now         func() time.Time
}

// NewFileLogger creates a logger writing to dir/runs.jsonl
func NewFileLogger(dir string) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	return &FileLogger{
		logFilePath: filepath.Join(dir, FileName),
		now:         time.Now,
	}, nil
}

// Path returns the log file location
func (l *FileLogger) Path() string {
	return l.logFilePath
}

// LogRun appends rec as one JSON line, stamping it when Timestamp is empty
func (l *FileLogger) LogRun(rec Record) error {
	if rec.Timestamp == "" {
		rec.Timestamp = l.now().Format(time.RFC3339)
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling log record: %w", err)
	}

	file, err := os.OpenFile(l.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing log file: %w", err)
	}
	return nil
}

// Discard is a Logger that drops every record
var Discard Logger = discard{}

type discard struct{}

func (discard) LogRun(Record) error { return nil }
