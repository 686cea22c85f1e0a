// Package execlog records hook execution attempts in an append-only JSONL
// log, one record per line. Records are immutable: the log is never
// truncated or rewritten by the engine.
package execlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Status values a record can carry.
type Status string

const (
	StatusSucceeded       Status = "succeeded"
	StatusFailed          Status = "failed"
	StatusSkippedInvalid  Status = "skipped-invalid"
	StatusSkippedDisabled Status = "skipped-disabled"
)

// Record describes one hook dispatch attempt.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	HookID       string    `json:"hook_id"`
	EventType    string    `json:"event_type"`
	EventTrigger string    `json:"event_trigger"`
	Status       Status    `json:"status"`
	Command      string    `json:"command,omitempty"`
	ExitCode     int       `json:"exit_code"`
	Stdout       string    `json:"stdout,omitempty"`
	Stderr       string    `json:"stderr,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	Detail       string    `json:"detail,omitempty"` // skip reason or hook problem
}

// Writer appends execution records. Implementations must never mutate or
// remove previously written records.
type Writer interface {
	Append(Record) error
}

// FileWriter appends JSONL records to a log file.
type FileWriter struct {
	file *os.File
}

// Open creates (or reuses) the log file, creating parent directories as
// needed. The file is opened append-only.
func Open(path string) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open execution log: %w", err)
	}
	return &FileWriter{file: f}, nil
}

// Append writes one record as a JSON line. Timestamps are normalized to UTC.
func (w *FileWriter) Append(r Record) error {
	r.Timestamp = r.Timestamp.UTC()
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode execution record: %w", err)
	}
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append execution record: %w", err)
	}
	return nil
}

// Close releases the file handle.
func (w *FileWriter) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Memory collects records in memory. Used in tests and dry inspection.
type Memory struct {
	Records []Record
}

// Append stores the record.
func (m *Memory) Append(r Record) error {
	r.Timestamp = r.Timestamp.UTC()
	m.Records = append(m.Records, r)
	return nil
}

// Read loads all records from a JSONL log file. A missing file is an empty
// log. Corrupt lines are skipped rather than failing the whole read, so a
// damaged entry can never make the history unreadable.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open execution log: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r Record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read execution log: %w", err)
	}
	return records, nil
}

// Tail returns the last n records (all of them if n <= 0 or n >= len).
func Tail(records []Record, n int) []Record {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[len(records)-n:]
}
