package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLog(t *testing.T) (EventLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log, path
}

func TestEventLog_WriteAndRead(t *testing.T) {
	log, _ := newTestLog(t)

	now := time.Now().UTC()
	events := []Event{
		{Time: now.Add(-2 * time.Hour), Level: "INFO", Type: "task.status_changed", Message: "moved", Data: map[string]any{"task_id": "t1"}},
		{Time: now.Add(-time.Hour), Level: "ERROR", Type: "stage.submitted", Message: "failed"},
		{Time: now, Level: "INFO", Type: "stage.submitted", Message: "ok"},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	all, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Read all = %d events, want 3", len(all))
	}
	if all[0].Data["task_id"] != "t1" {
		t.Errorf("event data lost: %v", all[0].Data)
	}

	byType, err := log.Read(EventFilter{Type: "stage.submitted"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("type filter = %d events, want 2", len(byType))
	}

	byLevel, err := log.Read(EventFilter{Level: "ERROR"})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(byLevel) != 1 || byLevel[0].Message != "failed" {
		t.Errorf("level filter = %v", byLevel)
	}

	since := now.Add(-90 * time.Minute)
	recent, err := log.Read(EventFilter{Since: &since})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("since filter = %d events, want 2", len(recent))
	}
}

func TestEventLog_SkipsMalformedLines(t *testing.T) {
	log, path := newTestLog(t)

	if err := log.Write(Event{Time: time.Now(), Level: "INFO", Type: "a", Message: "first"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{not json}\n"); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	_ = f.Close()
	if err := log.Write(Event{Time: time.Now(), Level: "INFO", Type: "b", Message: "second"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	events, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Read = %d events, want 2 with the corrupt line skipped", len(events))
	}
}

func TestEventLog_ReadMissingFile(t *testing.T) {
	log := &jsonlEventLog{path: filepath.Join(t.TempDir(), "never-written.jsonl")}
	events, err := log.Read(EventFilter{})
	if err != nil {
		t.Fatalf("Read of missing file should not error, got %v", err)
	}
	if events != nil {
		t.Errorf("Read = %v, want nil", events)
	}
}
