package models

// WorkTypeConfig is one entry of the static work-type table loaded from
// configuration at startup. It binds a work-type key to a handler identifier
// and the field/document lists that handler enforces.
type WorkTypeConfig struct {
	Key               string   `yaml:"key" mapstructure:"key"`
	HandlerID         string   `yaml:"handler" mapstructure:"handler"`
	Title             string   `yaml:"title" mapstructure:"title"`
	RequiredFields    []string `yaml:"required_fields,omitempty" mapstructure:"required_fields"`
	RequiredDocuments []string `yaml:"required_documents,omitempty" mapstructure:"required_documents"`
}

// APIConfig holds settings for the remote task repository endpoint.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// NotificationConfig controls the optional ops webhook notifier.
type NotificationConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	WebhookURL string `yaml:"webhook_url,omitempty" mapstructure:"webhook_url"`
}

// GlobalConfig holds system-wide settings read from .fieldconfig via Viper.
type GlobalConfig struct {
	API           APIConfig          `yaml:"api" mapstructure:"api"`
	Notifications NotificationConfig `yaml:"notifications" mapstructure:"notifications"`
	RosterPath    string             `yaml:"roster_path" mapstructure:"roster_path"`
	WorkTypes     []WorkTypeConfig   `yaml:"work_types,omitempty" mapstructure:"work_types"`
}
