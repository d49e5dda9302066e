package main

import (
	"context"
	"fmt"
	"strings"
)

// PromptCmd represents the single prompt command
type PromptCmd struct {
	Text []string `arg:"" help:"The prompt text to send"`
}

func (p *PromptCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logger := createCLILogger(cli.LogLevel)

	appInstance, toolbox, modelClient, err := setupApp(ctx, cli, logger)
	if err != nil {
		return err
	}
	defer appInstance.Close()

	conv, err := appInstance.Service.StartConversation(ctx,
		appInstance.Config.API.Provider,
		appInstance.Config.Agent.Model,
		appInstance.Config.Agent.ModelVersion,
		nil)
	if err != nil {
		return err
	}

	reply, err := appInstance.Service.RunTurn(ctx, conv, modelClient, toolbox, nil, strings.Join(p.Text, " "))
	if err != nil && reply == "" {
		return err
	}
	fmt.Println(reply)

	return appInstance.Service.EndConversation(ctx, conv)
}
