package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Loader handles loading and merging configuration from defaults, the user
// config file, and environment overrides.
type Loader struct {
	path      string
	validator *Validator
}

// NewLoader creates a loader for the given config file path. An empty path
// uses the default XDG location.
func NewLoader(path string) *Loader {
	if path == "" {
		path = GetDefaultConfigPath()
	}
	return &Loader{
		path:      path,
		validator: NewValidator(),
	}
}

// Load loads configuration from all sources and merges them
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if cfg, err := l.loadFile(l.path); err == nil {
		config = l.mergeConfigs(config, cfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config from %s: %w", l.path, err)
	}

	l.applyEnvironmentOverrides(config)
	l.applyStorageDefaults(config)

	if err := l.validator.Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &config, nil
}

// SaveFile saves configuration to a file
func (l *Loader) SaveFile(config *Config) error {
	if err := l.validator.Validate(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// mergeConfigs merges two configurations with the second taking precedence
func (l *Loader) mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.API.Provider != "" {
		result.API.Provider = override.API.Provider
	}
	if override.API.APIKeyEnvVar != "" {
		result.API.APIKeyEnvVar = override.API.APIKeyEnvVar
	}
	if override.API.APIKey != "" {
		result.API.APIKey = override.API.APIKey
	}
	if override.API.BaseURL != "" {
		result.API.BaseURL = override.API.BaseURL
	}
	if override.API.Timeout > 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.API.Retry.MaxRetries > 0 {
		result.API.Retry.MaxRetries = override.API.Retry.MaxRetries
	}
	if override.API.Retry.InitialDelay > 0 {
		result.API.Retry.InitialDelay = override.API.Retry.InitialDelay
	}
	if override.Agent.Model != "" {
		result.Agent.Model = override.Agent.Model
	}
	if override.Agent.ModelVersion != "" {
		result.Agent.ModelVersion = override.Agent.ModelVersion
	}
	if override.Agent.Temperature > 0 {
		result.Agent.Temperature = override.Agent.Temperature
	}
	if override.Agent.MaxTokens > 0 {
		result.Agent.MaxTokens = override.Agent.MaxTokens
	}
	if override.Conversation.MaxToolDepth > 0 {
		result.Conversation.MaxToolDepth = override.Conversation.MaxToolDepth
	}
	if override.Conversation.CompactEvery > 0 {
		result.Conversation.CompactEvery = override.Conversation.CompactEvery
	}
	if override.Conversation.CompactWindow > 0 {
		result.Conversation.CompactWindow = override.Conversation.CompactWindow
	}
	if override.Storage.DatabasePath != "" {
		result.Storage.DatabasePath = override.Storage.DatabasePath
	}
	if override.Storage.MediaDirectory != "" {
		result.Storage.MediaDirectory = override.Storage.MediaDirectory
	}
	if override.Preferences.LogLevel != "" {
		result.Preferences.LogLevel = override.Preferences.LogLevel
	}

	return &result
}

// applyEnvironmentOverrides applies TARS_* environment variables on top of
// the merged configuration.
func (l *Loader) applyEnvironmentOverrides(config *Config) {
	if v := os.Getenv("TARS_MODEL"); v != "" {
		config.Agent.Model = v
	}
	if v := os.Getenv("TARS_BASE_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("TARS_LOG_LEVEL"); v != "" {
		config.Preferences.LogLevel = v
	}
	if v := os.Getenv("TARS_DB_PATH"); v != "" {
		config.Storage.DatabasePath = v
	}
}

// applyStorageDefaults fills unset storage paths from the XDG defaults.
func (l *Loader) applyStorageDefaults(config *Config) {
	paths := GetDefaultStoragePaths()
	if config.Storage.DatabasePath == "" {
		config.Storage.DatabasePath = paths.DatabasePath
	}
	if config.Storage.MediaDirectory == "" {
		config.Storage.MediaDirectory = paths.MediaDirectory
	}
}

// ResolveAPIKey returns the API key, preferring the configured environment
// variable over the inline value.
func (c *Config) ResolveAPIKey() string {
	if c.API.APIKeyEnvVar != "" {
		if v := os.Getenv(c.API.APIKeyEnvVar); v != "" {
			return v
		}
	}
	return c.API.APIKey
}
