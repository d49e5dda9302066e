package executor

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// Service drives conversations: it owns the durable store handle and the
// loop limits, and exposes the turn protocol on top of them.
type Service struct {
	database      *sql.DB
	logger        *slog.Logger
	systemPrompt  string
	maxToolDepth  int
	compactEvery  int
	compactWindow int
	temperature   float64
	maxTokens     int
}

// ServiceConfig holds configuration for creating a new Service
type ServiceConfig struct {
	Database     *sql.DB
	SystemPrompt string
	// MaxToolDepth bounds how many times one user turn may loop back to the
	// model after tool execution.
	MaxToolDepth int
	// CompactEvery triggers transcript compaction after this many completed
	// user turns.
	CompactEvery int
	// CompactWindow is how many durable messages the summary covers.
	CompactWindow int
	// Temperature and MaxTokens are forwarded on completion requests when
	// set above zero; zero leaves the provider defaults.
	Temperature float64
	MaxTokens   int
	Logger      *slog.Logger
}

// NewService creates a new conversation service
func NewService(config ServiceConfig) *Service {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.MaxToolDepth <= 0 {
		config.MaxToolDepth = 5
	}
	if config.CompactEvery <= 0 {
		config.CompactEvery = 10
	}
	if config.CompactWindow <= 0 {
		config.CompactWindow = 10
	}

	return &Service{
		database:      config.Database,
		logger:        config.Logger,
		systemPrompt:  config.SystemPrompt,
		maxToolDepth:  config.MaxToolDepth,
		compactEvery:  config.CompactEvery,
		compactWindow: config.CompactWindow,
		temperature:   config.Temperature,
		maxTokens:     config.MaxTokens,
	}
}

// SetSystemPrompt replaces the prompt used for conversations started after
// this call. Conversations already in flight keep their original prompt.
func (s *Service) SetSystemPrompt(prompt string) {
	s.systemPrompt = prompt
}

// StartConversation ensures the model row exists, opens a session, and
// returns a fresh conversation context.
func (s *Service) StartConversation(ctx context.Context, provider, modelName, modelVersion string, title *string) (*ConversationContext, error) {
	if s.database == nil {
		return nil, ErrDatabaseRequired
	}

	modelID, err := storage.GetOrCreateModel(ctx, s.database, provider, modelName, modelVersion)
	if err != nil {
		return nil, err
	}

	sessionID, err := storage.CreateSession(ctx, s.database, &modelID, title)
	if err != nil {
		return nil, err
	}

	s.logger.Info("conversation started", "session_id", sessionID, "model", modelName)
	return NewConversationContext(sessionID, modelID, s.systemPrompt), nil
}

// EndConversation closes the session. Calling it twice is harmless.
func (s *Service) EndConversation(ctx context.Context, conv *ConversationContext) error {
	if conv.ended {
		return nil
	}
	if err := storage.EndSession(ctx, s.database, conv.SessionID); err != nil {
		return err
	}
	conv.ended = true
	s.logger.Info("conversation ended", "session_id", conv.SessionID, "turns", conv.TurnCount)
	return nil
}

// GetSession fetches a session joined with its model details.
func (s *Service) GetSession(ctx context.Context, sessionID int64) (*storage.SessionInfo, error) {
	info, err := storage.GetSessionByID(ctx, s.database, sessionID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrSessionNotFound
	}
	return info, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, limit int) ([]storage.SessionInfo, error) {
	return storage.ListSessions(ctx, s.database, limit)
}
