package execlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func record(hookID string, status Status) Record {
	return Record{
		Timestamp:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		HookID:       hookID,
		EventType:    "task_status_change",
		EventTrigger: "completed",
		Status:       status,
		Command:      "echo done-42",
		DurationMs:   12,
	}
}

func TestFileWriter_AppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory", "hook-log.jsonl")

	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Append(record("a", StatusSucceeded)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Append(record("b", StatusFailed)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	records, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("read %d records, want 2", len(records))
	}
	if records[0].HookID != "a" || records[1].HookID != "b" {
		t.Errorf("order = %s, %s; want a, b", records[0].HookID, records[1].HookID)
	}
	if records[1].Status != StatusFailed {
		t.Errorf("status = %s, want %s", records[1].Status, StatusFailed)
	}
}

func TestFileWriter_ReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook-log.jsonl")

	for _, id := range []string{"first", "second"} {
		w, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := w.Append(record(id, StatusSucceeded)); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}

	records, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("reopening truncated the log: %d records, want 2", len(records))
	}
	if records[0].HookID != "first" {
		t.Errorf("prior entry was rewritten: %+v", records[0])
	}
}

func TestAppend_TimestampIsUTC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook-log.jsonl")

	w, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	loc := time.FixedZone("UTC+7", 7*3600)
	r := record("tz", StatusSucceeded)
	r.Timestamp = time.Date(2025, 3, 1, 19, 0, 0, 0, loc)
	if err := w.Append(r); err != nil {
		t.Fatal(err)
	}
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "2025-03-01T12:00:00Z") {
		t.Errorf("timestamp not normalized to UTC: %s", data)
	}
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	records, err := Read(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("missing log must not error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records", len(records))
	}
}

func TestRead_SkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook-log.jsonl")
	content := `{"hook_id":"ok","status":"succeeded"}` + "\n" +
		"not json at all\n" +
		`{"hook_id":"ok2","status":"failed"}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("read %d records, want 2", len(records))
	}
}

func TestTail(t *testing.T) {
	records := []Record{record("a", StatusSucceeded), record("b", StatusSucceeded), record("c", StatusSucceeded)}

	if got := Tail(records, 2); len(got) != 2 || got[0].HookID != "b" {
		t.Errorf("Tail(2) = %+v", got)
	}
	if got := Tail(records, 0); len(got) != 3 {
		t.Errorf("Tail(0) must return all, got %d", len(got))
	}
	if got := Tail(records, 10); len(got) != 3 {
		t.Errorf("Tail(10) must return all, got %d", len(got))
	}
}
