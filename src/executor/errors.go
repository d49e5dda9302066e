package executor

import "errors"

var (
	// Config validation errors
	ErrModelClientRequired = errors.New("model client is required")
	ErrDatabaseRequired    = errors.New("database is required")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session already ended")

	// Execution errors
	ErrToolDepthExceeded = errors.New("tool recursion limit exceeded")
)
