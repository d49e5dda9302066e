package main

import (
	"context"
	"log/slog"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/app"
	"github.com/Praneeth-Gandodi/Tars/src/config"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
)

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(cli *CLI) (*config.Config, error) {
	cfg, err := config.NewLoader(cli.Config).Load()
	if err != nil {
		return nil, err
	}
	if cli.Model != "" {
		cfg.Agent.Model = cli.Model
	}
	if cli.LogLevel != "" {
		cfg.Preferences.LogLevel = cli.LogLevel
	}
	return cfg, nil
}

// setupApp wires configuration, logging, the toolbox, and the model client
// for a command. The toolbox is nil when tools are disabled.
func setupApp(ctx context.Context, cli *CLI, logger *slog.Logger) (*app.App, *agent.DefaultToolbox, aisdk.ModelClient, error) {
	cfg, err := loadConfig(cli)
	if err != nil {
		return nil, nil, nil, err
	}

	toolsutil.SetLogger(logger)

	appInstance, err := app.New(ctx, cfg, "", logger)
	if err != nil {
		return nil, nil, nil, err
	}

	var toolbox *agent.DefaultToolbox
	if !cli.NoTools {
		toolbox, err = createToolbox(appInstance.Store.DB(), cfg.Storage.MediaDirectory)
		if err != nil {
			appInstance.Close()
			return nil, nil, nil, err
		}
	}

	appInstance.Service.SetSystemPrompt(tarsagent.GenerateSystemPrompt(toolbox))

	modelClient, err := appInstance.ModelProvider.Model(ctx, cfg.Agent.Model)
	if err != nil {
		appInstance.Close()
		return nil, nil, nil, err
	}

	return appInstance, toolbox, modelClient, nil
}
