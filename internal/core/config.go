package core

import (
	"fmt"
	"strings"

	"github.com/helioworks/fieldops/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager defines the interface for loading and validating the
// console configuration from the .fieldconfig file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .fieldconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultGlobalConfig returns a GlobalConfig populated with sensible defaults.
func defaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		API: models.APIConfig{
			BaseURL:        "http://localhost:8080/api/v1",
			TimeoutSeconds: 15,
		},
		RosterPath: "roster.yaml",
		WorkTypes:  DefaultWorkTypes(),
	}
}

// LoadGlobalConfig reads the .fieldconfig file from the base path using
// Viper. If the file does not exist, sensible defaults are returned,
// including the built-in work-type table.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".fieldconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.timeout_seconds", cfg.API.TimeoutSeconds)
	v.SetDefault("roster_path", cfg.RosterPath)
	v.SetDefault("notifications.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .fieldconfig: %w", err)
	}

	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.TimeoutSeconds = v.GetInt("api.timeout_seconds")
	cfg.RosterPath = v.GetString("roster_path")
	cfg.Notifications.Enabled = v.GetBool("notifications.enabled")
	cfg.Notifications.WebhookURL = v.GetString("notifications.webhook_url")

	// Parse the work_types table. When the file defines one, it replaces the
	// built-in table entirely so stages can be retired from configuration.
	if raw := v.Get("work_types"); raw != nil {
		if entries, ok := raw.([]interface{}); ok {
			var table []models.WorkTypeConfig
			for _, item := range entries {
				m, ok := item.(map[string]interface{})
				if !ok {
					continue
				}
				entry := models.WorkTypeConfig{}
				if key, ok := m["key"].(string); ok {
					entry.Key = key
				}
				if handler, ok := m["handler"].(string); ok {
					entry.HandlerID = handler
				}
				if title, ok := m["title"].(string); ok {
					entry.Title = title
				}
				entry.RequiredFields = stringSlice(m["required_fields"])
				entry.RequiredDocuments = stringSlice(m["required_documents"])
				table = append(table, entry)
			}
			if len(table) > 0 {
				cfg.WorkTypes = table
			}
		}
	}

	return cfg, nil
}

// stringSlice converts a raw Viper list value into a []string.
func stringSlice(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ValidateConfig checks the configuration for invalid values and returns a
// clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.API.BaseURL == "" {
		errs = append(errs, "api.base_url must not be empty")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Sprintf("api.timeout_seconds must be positive, got %d", cfg.API.TimeoutSeconds))
	}
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL == "" {
		errs = append(errs, "notifications.webhook_url must be set when notifications are enabled")
	}

	seen := make(map[string]bool, len(cfg.WorkTypes))
	for _, wt := range cfg.WorkTypes {
		if wt.Key == "" {
			errs = append(errs, "work_types entries must have a key")
			continue
		}
		if seen[wt.Key] {
			errs = append(errs, fmt.Sprintf("work_types key %q is duplicated", wt.Key))
		}
		seen[wt.Key] = true
		if wt.HandlerID == "" {
			errs = append(errs, fmt.Sprintf("work_types key %q has no handler", wt.Key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
