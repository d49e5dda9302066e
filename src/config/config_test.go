package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", config.Version)
	}

	if config.API.Provider != "groq" {
		t.Errorf("Expected provider groq, got %s", config.API.Provider)
	}
	if config.API.APIKeyEnvVar != "GROQ_API_KEY" {
		t.Errorf("Expected GROQ_API_KEY env var, got %s", config.API.APIKeyEnvVar)
	}

	if config.Agent.Model == "" {
		t.Error("Expected model to be set")
	}

	if config.Conversation.MaxToolDepth != 5 {
		t.Errorf("Expected tool depth 5, got %d", config.Conversation.MaxToolDepth)
	}
	if config.Conversation.CompactEvery != 10 {
		t.Errorf("Expected compaction every 10 turns, got %d", config.Conversation.CompactEvery)
	}
}

func TestConfigValidation(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: func() *Config {
				c := DefaultConfig()
				c.API.Provider = "carrier-pigeon"
				return c
			}(),
			wantErr: true,
		},
		{
			name: "invalid temperature",
			config: func() *Config {
				c := DefaultConfig()
				c.Agent.Temperature = 3.0
				return c
			}(),
			wantErr: true,
		},
		{
			name: "negative max tokens",
			config: func() *Config {
				c := DefaultConfig()
				c.Agent.MaxTokens = -1
				return c
			}(),
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: func() *Config {
				c := DefaultConfig()
				c.Preferences.LogLevel = "loud"
				return c
			}(),
			wantErr: true,
		},
		{
			name: "zero tool depth",
			config: func() *Config {
				c := DefaultConfig()
				c.Conversation.MaxToolDepth = 0
				return c
			}(),
			wantErr: true,
		},
		{
			name: "no API key source",
			config: func() *Config {
				c := DefaultConfig()
				c.API.APIKeyEnvVar = ""
				c.API.APIKey = ""
				return c
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{
		"api": {"provider": "groq", "timeout": 30000000000},
		"agent": {"model": "llama-3.3-70b-versatile"},
		"conversation": {"max_tool_depth": 3}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.Agent.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Expected overridden model, got %s", config.Agent.Model)
	}
	if config.API.Timeout != 30*time.Second {
		t.Errorf("Expected overridden timeout, got %v", config.API.Timeout)
	}
	if config.Conversation.MaxToolDepth != 3 {
		t.Errorf("Expected overridden tool depth, got %d", config.Conversation.MaxToolDepth)
	}
	// Unset fields keep their defaults.
	if config.Conversation.CompactEvery != 10 {
		t.Errorf("Expected default compact interval, got %d", config.Conversation.CompactEvery)
	}
	if config.Storage.DatabasePath == "" {
		t.Error("Expected storage defaults to be filled in")
	}
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.Agent.Model != DefaultConfig().Agent.Model {
		t.Errorf("Expected default model, got %s", config.Agent.Model)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TARS_MODEL", "qwen/qwen3-32b")
	t.Setenv("TARS_LOG_LEVEL", "debug")

	config, err := NewLoader(filepath.Join(t.TempDir(), "none.json")).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.Agent.Model != "qwen/qwen3-32b" {
		t.Errorf("Expected env model override, got %s", config.Agent.Model)
	}
	if config.Preferences.LogLevel != "debug" {
		t.Errorf("Expected env log level override, got %s", config.Preferences.LogLevel)
	}
}

func TestResolveAPIKey(t *testing.T) {
	config := DefaultConfig()
	config.API.APIKey = "inline-key"
	config.API.APIKeyEnvVar = "TARS_TEST_KEY"

	if got := config.ResolveAPIKey(); got != "inline-key" {
		t.Errorf("Expected inline key fallback, got %q", got)
	}

	t.Setenv("TARS_TEST_KEY", "env-key")
	if got := config.ResolveAPIKey(); got != "env-key" {
		t.Errorf("Expected env key to win, got %q", got)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	loader := NewLoader(path)

	config := DefaultConfig()
	config.Agent.Model = "openai/gpt-oss-20b"
	if err := loader.SaveFile(config); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Agent.Model != "openai/gpt-oss-20b" {
		t.Errorf("Expected round-tripped model, got %s", loaded.Agent.Model)
	}
}
