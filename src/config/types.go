package config

import (
	"time"
)

// Config represents the complete configuration for tars
type Config struct {
	// Version of the configuration format
	Version string `json:"version"`

	// API configuration
	API APIConfig `json:"api"`

	// Agent configuration
	Agent AgentConfig `json:"agent"`

	// Conversation loop configuration
	Conversation ConversationConfig `json:"conversation"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// User preferences
	Preferences PreferencesConfig `json:"preferences"`
}

// APIConfig defines provider API settings
type APIConfig struct {
	// Provider name
	Provider string `json:"provider" validate:"required,provider"`

	// APIKeyEnvVar is the environment variable holding the API key
	APIKeyEnvVar string `json:"api_key_env_var"`

	// APIKey inline; the environment variable takes precedence
	APIKey string `json:"api_key,omitempty"`

	// BaseURL overrides the provider's default endpoint
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`

	// Timeout for API requests
	Timeout time.Duration `json:"timeout"`

	// Retry configuration
	Retry RetryConfig `json:"retry"`
}

// RetryConfig defines retry behavior for transient API failures
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts
	MaxRetries int `json:"max_retries" validate:"min=0,max=10"`

	// InitialDelay before the first retry
	InitialDelay time.Duration `json:"initial_delay"`
}

// AgentConfig defines model and sampling settings
type AgentConfig struct {
	// Model identifier sent to the provider
	Model string `json:"model" validate:"required"`

	// ModelVersion pins a specific revision; empty means unpinned
	ModelVersion string `json:"model_version,omitempty"`

	// Temperature for sampling
	Temperature float64 `json:"temperature" validate:"min=0,max=2"`

	// MaxTokens caps the completion length; 0 leaves it to the provider
	MaxTokens int `json:"max_tokens" validate:"min=0"`
}

// ConversationConfig defines the turn loop limits
type ConversationConfig struct {
	// MaxToolDepth bounds tool rounds within one user turn
	MaxToolDepth int `json:"max_tool_depth" validate:"min=1,max=25"`

	// CompactEvery triggers summarization after this many turns
	CompactEvery int `json:"compact_every" validate:"min=1"`

	// CompactWindow is how many recent messages the summary covers
	CompactWindow int `json:"compact_window" validate:"min=1"`
}

// StorageConfig defines where durable state lives
type StorageConfig struct {
	// DatabasePath is the sqlite file; empty uses the XDG state default
	DatabasePath string `json:"database_path,omitempty"`

	// MediaDirectory is where downloaded artifacts land; empty uses the
	// XDG state default
	MediaDirectory string `json:"media_directory,omitempty"`
}

// PreferencesConfig defines user preferences
type PreferencesConfig struct {
	// LogLevel for diagnostics
	LogLevel string `json:"log_level" validate:"log_level"`

	// Color enables styled terminal output
	Color bool `json:"color"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e ValidationError) Error() string {
	return "config: " + e.Field + ": " + e.Message
}
