package groqclient

import (
	"log/slog"
	"time"
)

// Config holds configuration for the Groq client
type Config struct {
	APIKey     string        // Groq API key
	BaseURL    string        // Base URL for the OpenAI-compatible API
	Logger     *slog.Logger  // Logger for debugging
	Timeout    time.Duration // HTTP timeout
	RetryCount int           // Number of retries for failed requests
	RetryDelay time.Duration // Delay between retries
}
