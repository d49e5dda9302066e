package config

import (
	"time"
)

// DefaultConfig returns a default configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			Provider:     "groq",
			APIKeyEnvVar: "GROQ_API_KEY",
			Timeout:      60 * time.Second,
			Retry: RetryConfig{
				MaxRetries:   3,
				InitialDelay: 1 * time.Second,
			},
		},

		Agent: AgentConfig{
			Model:       "openai/gpt-oss-120b",
			Temperature: 0.7,
			MaxTokens:   0,
		},

		Conversation: ConversationConfig{
			MaxToolDepth:  5,
			CompactEvery:  10,
			CompactWindow: 10,
		},

		Preferences: PreferencesConfig{
			LogLevel: "info",
			Color:    true,
		},
	}
}
