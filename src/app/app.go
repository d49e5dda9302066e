package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Praneeth-Gandodi/Tars/src/config"
	"github.com/Praneeth-Gandodi/Tars/src/executor"
	"github.com/Praneeth-Gandodi/Tars/src/groqclient"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// App represents the main application with all services
type App struct {
	ModelProvider *groqclient.Client
	Store         *storage.DB
	Service       *executor.Service
	Logger        *slog.Logger
	Config        *config.Config
}

// New creates a new App instance with all services initialized
func New(ctx context.Context, cfg *config.Config, systemPrompt string, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set %s or api_key in the config file", cfg.API.APIKeyEnvVar)
	}

	dbPath := cfg.Storage.DatabasePath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.MkdirAll(cfg.Storage.MediaDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	provider := groqclient.NewClient(groqclient.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		RetryCount: cfg.API.Retry.MaxRetries,
		RetryDelay: cfg.API.Retry.InitialDelay,
		Logger:     logger,
	})

	service := executor.NewService(executor.ServiceConfig{
		Database:      store.DB(),
		SystemPrompt:  systemPrompt,
		MaxToolDepth:  cfg.Conversation.MaxToolDepth,
		CompactEvery:  cfg.Conversation.CompactEvery,
		CompactWindow: cfg.Conversation.CompactWindow,
		Temperature:   cfg.Agent.Temperature,
		MaxTokens:     cfg.Agent.MaxTokens,
		Logger:        logger,
	})

	return &App{
		ModelProvider: provider,
		Store:         store,
		Service:       service,
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// Close closes all resources held by the app
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
