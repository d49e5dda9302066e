package executor

import (
	"context"
	"fmt"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// summarizePrompt steers the model toward a factual recap; the assistant
// otherwise tends to elaborate in character.
const summarizePrompt = "Summarize our previous conversation in a few concise sentences. " +
	"Focus only on the factual information discussed. " +
	"Do not add roleplay elements, character references, or fictional context."

// Compact shrinks the working transcript to [system prompt, summary]. The
// summary is produced by the model from the last `window` durable messages
// (the configured default when window <= 0). The durable message log is
// never truncated or rewritten; only the in-memory working set changes.
func (s *Service) Compact(ctx context.Context, conv *ConversationContext, modelClient aisdk.ModelClient, window int) (string, error) {
	if modelClient == nil {
		return "", ErrModelClientRequired
	}
	if window <= 0 {
		window = s.compactWindow
	}

	recent, err := storage.GetLastMessages(ctx, s.database, window)
	if err != nil {
		return "", fmt.Errorf("failed to load recent messages: %w", err)
	}

	prompt := make([]*aisdk.Message, 0, len(recent)+2)
	prompt = append(prompt, &aisdk.Message{Role: "system", Content: conv.SystemPrompt})
	for _, m := range recent {
		// Tool rows are carried as plain text so the summarizer call does
		// not need the original tool_call ids.
		role := m.Role
		if role == "tool" {
			role = "assistant"
		}
		prompt = append(prompt, &aisdk.Message{Role: role, Content: m.Content})
	}
	prompt = append(prompt, &aisdk.Message{Role: "user", Content: summarizePrompt})

	req := &aisdk.ChatCompletionRequest{Messages: prompt}
	if s.temperature > 0 {
		req.Temperature = &s.temperature
	}
	if s.maxTokens > 0 {
		req.MaxTokens = &s.maxTokens
	}
	resp, err := modelClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarization returned no choices")
	}
	summary := resp.Choices[0].Message.Content

	conv.Messages = []*aisdk.Message{
		{Role: "system", Content: conv.SystemPrompt},
		{Role: "assistant", Content: summary},
	}
	conv.TurnCount = 0

	s.logger.Info("transcript compacted",
		"session_id", conv.SessionID,
		"window", window,
		"summary_len", len(summary))
	return summary, nil
}
