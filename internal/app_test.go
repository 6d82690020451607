package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/helioworks/fieldops/internal/cli"
)

func TestResolveBasePath_FieldopsHomeSet(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FIELDOPS_HOME", tmpDir)

	if got := ResolveBasePath(); got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q", got, tmpDir)
	}
}

func TestResolveBasePath_FindsFieldConfig(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub", "nested")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".fieldconfig"), []byte("roster_path: roster.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	if err := os.Chdir(subDir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("FIELDOPS_HOME")

	got := ResolveBasePath()
	// Symlinked temp dirs can differ textually; compare resolved paths.
	wantResolved, _ := filepath.EvalSymlinks(tmpDir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("ResolveBasePath() = %q, want %q", got, tmpDir)
	}
}

func TestNewApp_WiresEverything(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("FIELDOPS_USER", "emp-1")
	t.Setenv("FIELDOPS_ROLE", "field-engineer")
	t.Setenv("FIELDOPS_TOKEN", "tok-123")

	app, err := NewApp(tmpDir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Board == nil || app.Registry == nil || app.Handlers == nil || app.Reassign == nil {
		t.Fatal("core services not wired")
	}
	if app.Client == nil || app.Roster == nil || app.Notifier == nil {
		t.Fatal("boundary services not wired")
	}
	if app.Session.UserID != "emp-1" {
		t.Errorf("session user = %q", app.Session.UserID)
	}

	// CLI package-level variables point at the app's services.
	if cli.Board != app.Board || cli.Registry != app.Registry {
		t.Error("cli package not wired to app services")
	}
	if cli.SessionID != "emp-1" {
		t.Errorf("cli.SessionID = %q", cli.SessionID)
	}

	// A missing roster file yields an empty snapshot, not a startup failure.
	if got := app.Roster.GetAll(); len(got) != 0 {
		t.Errorf("roster = %v, want empty", got)
	}

	// The event log is created next to the config.
	if _, err := os.Stat(filepath.Join(tmpDir, ".fieldops_events.jsonl")); err != nil {
		t.Errorf("event log not created: %v", err)
	}
}

func TestNewApp_RejectsInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	config := "api:\n  base_url: \"\"\n  timeout_seconds: 0\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".fieldconfig"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(tmpDir); err == nil {
		t.Fatal("expected config validation failure")
	}
}
