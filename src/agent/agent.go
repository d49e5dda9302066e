package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
)

// Agent pairs a model client with a toolbox. SendMessage forwards the
// transcript plus the tool schemas and returns the model's message, which
// carries either final text or requested tool calls.
type Agent struct {
	SystemPrompt string
	Model        aisdk.ModelClient
	Toolbox      *DefaultToolbox
	Logger       *slog.Logger

	// Sampling knobs. Temperature > 0 and MaxTokens > 0 are forwarded on
	// every completion request; zero values leave the provider defaults.
	Temperature float64
	MaxTokens   int
}

func (a *Agent) SendMessage(ctx context.Context, messages []*aisdk.Message) (*aisdk.Message, error) {
	var chatTools []*aisdk.ChatTool
	if a.Toolbox != nil {
		chatTools = ToChatTools(a.Toolbox.Tools())
	}

	ccr := &aisdk.ChatCompletionRequest{
		Messages: messages,
		Tools:    chatTools,
	}
	if len(chatTools) > 0 {
		ccr.ToolChoice = "auto"
	}
	if a.Temperature > 0 {
		ccr.Temperature = &a.Temperature
	}
	if a.MaxTokens > 0 {
		ccr.MaxTokens = &a.MaxTokens
	}
	response, err := a.Model.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &response.Choices[0].Message, nil
}
