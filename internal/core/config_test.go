package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helioworks/fieldops/pkg/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".fieldconfig"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return dir
}

func TestLoadGlobalConfig_MissingFileUsesDefaults(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())
	cfg, err := cm.LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want 15", cfg.API.TimeoutSeconds)
	}
	if len(cfg.WorkTypes) != len(DefaultWorkTypes()) {
		t.Errorf("work types = %d, want built-in table", len(cfg.WorkTypes))
	}
}

func TestLoadGlobalConfig_FileOverrides(t *testing.T) {
	dir := writeConfig(t, `
api:
  base_url: https://fieldops.helioworks.example/api/v1
  timeout_seconds: 30
roster_path: crew/roster.yaml
notifications:
  enabled: true
  webhook_url: https://hooks.example/ops
work_types:
  - key: site-survey
    handler: data-gathering
    title: Site Survey
    required_fields:
      - roof_area
    required_documents:
      - survey_sheet
`)

	cm := NewConfigurationManager(dir)
	cfg, err := cm.LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	if cfg.API.BaseURL != "https://fieldops.helioworks.example/api/v1" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d", cfg.API.TimeoutSeconds)
	}
	if cfg.RosterPath != "crew/roster.yaml" {
		t.Errorf("roster_path = %q", cfg.RosterPath)
	}
	if !cfg.Notifications.Enabled || cfg.Notifications.WebhookURL != "https://hooks.example/ops" {
		t.Errorf("notifications = %+v", cfg.Notifications)
	}

	// A configured work_types table replaces the built-in one.
	if len(cfg.WorkTypes) != 1 {
		t.Fatalf("work types = %d, want 1", len(cfg.WorkTypes))
	}
	wt := cfg.WorkTypes[0]
	if wt.Key != "site-survey" || wt.HandlerID != "data-gathering" {
		t.Errorf("work type = %+v", wt)
	}
	if len(wt.RequiredFields) != 1 || wt.RequiredFields[0] != "roof_area" {
		t.Errorf("required fields = %v", wt.RequiredFields)
	}
	if len(wt.RequiredDocuments) != 1 || wt.RequiredDocuments[0] != "survey_sheet" {
		t.Errorf("required documents = %v", wt.RequiredDocuments)
	}
}

func TestValidateConfig(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	good, err := cm.LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if err := cm.ValidateConfig(good); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	bad := &models.GlobalConfig{
		API: models.APIConfig{BaseURL: "", TimeoutSeconds: 0},
		Notifications: models.NotificationConfig{
			Enabled: true,
		},
		WorkTypes: []models.WorkTypeConfig{
			{Key: "dup", HandlerID: "payment"},
			{Key: "dup", HandlerID: "payment"},
			{Key: "no-handler"},
			{Key: ""},
		},
	}
	err = cm.ValidateConfig(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"api.base_url must not be empty",
		"api.timeout_seconds must be positive",
		"notifications.webhook_url must be set",
		`work_types key "dup" is duplicated`,
		`work_types key "no-handler" has no handler`,
		"work_types entries must have a key",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q:\n%v", want, err)
		}
	}

	if err := cm.ValidateConfig(nil); err == nil {
		t.Error("nil config should fail validation")
	}
}
