package executor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// RunTurn executes one full user turn: append the input, call the model,
// resolve any requested tool invocations, and repeat until the model
// produces a final text answer or the tool depth bound is hit. The returned
// string is the final assistant message.
func (s *Service) RunTurn(ctx context.Context, conv *ConversationContext, modelClient aisdk.ModelClient, toolbox *agent.DefaultToolbox, callbacks *Callbacks, userInput string) (string, error) {
	if modelClient == nil {
		return "", ErrModelClientRequired
	}
	if conv.ended {
		return "", ErrSessionEnded
	}

	userMsgID := s.appendUserMessage(ctx, conv, userInput)

	ag := &agent.Agent{
		SystemPrompt: conv.SystemPrompt,
		Model:        modelClient,
		Toolbox:      toolbox,
		Logger:       s.logger,
		Temperature:  s.temperature,
		MaxTokens:    s.maxTokens,
	}

	for depth := 0; ; depth++ {
		response, err := ag.SendMessage(ctx, conv.Messages)
		if err != nil {
			// Provider failure before any dispatch; no partial tool state
			// is left dangling.
			return "", fmt.Errorf("completion request failed: %w", err)
		}

		if len(response.ToolCalls) == 0 {
			s.appendAssistantMessage(ctx, conv, response.Content)
			s.finishTurn(ctx, conv, modelClient, callbacks)
			return response.Content, nil
		}

		if depth >= s.maxToolDepth {
			content := fmt.Sprintf("Error: tool recursion limit exceeded after %d rounds", s.maxToolDepth)
			s.appendAssistantMessage(ctx, conv, content)
			s.finishTurn(ctx, conv, modelClient, callbacks)
			return content, ErrToolDepthExceeded
		}

		// The assistant's tool request joins the working transcript so the
		// follow-up completion sees its own call. It is not a durable
		// conversation turn; only user, assistant text, and tool result
		// rows are persisted.
		conv.Append(&aisdk.Message{
			Role:      "assistant",
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		// Sequential on purpose: transcript ordering must stay
		// deterministic, in the order the model emitted the calls.
		for i := range response.ToolCalls {
			s.dispatchToolCall(ctx, conv, toolbox, &response.ToolCalls[i], userMsgID, callbacks)
		}
	}
}

// dispatchToolCall resolves one requested invocation: records the attempt,
// executes the handler inside a failure boundary, and appends the tool
// result message. No outcome here is fatal to the turn.
func (s *Service) dispatchToolCall(ctx context.Context, conv *ConversationContext, toolbox *agent.DefaultToolbox, call *aisdk.ToolCall, userMsgID int64, callbacks *Callbacks) {
	name := call.Function.Name
	logger := s.logger.With("tool", name, "call_id", call.ID)

	if err := callbacks.ToolCall(*call); err != nil {
		logger.Warn("tool call callback failed", "error", err)
	}

	// Malformed argument payloads degrade to an empty argument set.
	argsJSON := normalizeArguments(call.Function.Arguments)
	call.Function.Arguments = json.RawMessage(argsJSON)

	if toolbox == nil || !toolbox.HasTool(name) {
		// No registry entry, so there is no ToolCall row to attach to;
		// synthesize the error inline.
		content := fmt.Sprintf(`{"error": "Function %s not found"}`, name)
		logger.Warn("requested tool is not registered")
		s.appendToolMessage(conv, call, content)
		if _, err := storage.CreateMessage(ctx, s.database, &storage.Message{
			SessionID: conv.SessionID,
			Role:      "tool",
			Content:   content,
			ModelID:   &conv.ModelID,
		}); err != nil {
			logger.Error("failed to persist tool message", "error", err)
		}
		if err := callbacks.ToolResult(name, nil, nil); err != nil {
			logger.Warn("tool result callback failed", "error", err)
		}
		return
	}

	// The attempt is recorded before execution so a crash mid-tool still
	// leaves an auditable row.
	var trigger *int64
	if userMsgID != 0 {
		trigger = &userMsgID
	}
	toolCallID, err := storage.CreateToolCall(ctx, s.database, name, argsJSON, trigger)
	if err != nil {
		logger.Error("failed to record tool call", "error", err)
		toolCallID = 0
	}

	result, execErr := toolbox.ExecuteTool(ctx, call)

	var content string
	switch {
	case execErr != nil:
		content = fmt.Sprintf("Error: An exception occurred: %v", execErr)
		logger.Error("tool execution failed", "error", execErr)
	case result != nil:
		content = string(result.Content)
		if result.IsError {
			logger.Warn("tool returned an error result", "content", content)
		}
	default:
		content = ""
	}

	if toolCallID != 0 {
		if _, err := storage.SaveToolResponse(ctx, s.database, toolCallID, content, conv.SessionID, &conv.ModelID); err != nil {
			logger.Error("failed to persist tool response", "error", err)
		}
	} else if _, err := storage.CreateMessage(ctx, s.database, &storage.Message{
		SessionID: conv.SessionID,
		Role:      "tool",
		Content:   content,
		ModelID:   &conv.ModelID,
	}); err != nil {
		logger.Error("failed to persist tool message", "error", err)
	}

	s.appendToolMessage(conv, call, content)

	if err := callbacks.ToolResult(name, result, execErr); err != nil {
		logger.Warn("tool result callback failed", "error", err)
	}
}

// finishTurn bumps the turn counter and fires periodic compaction.
func (s *Service) finishTurn(ctx context.Context, conv *ConversationContext, modelClient aisdk.ModelClient, callbacks *Callbacks) {
	conv.TurnCount++
	if conv.TurnCount < s.compactEvery {
		return
	}

	summary, err := s.Compact(ctx, conv, modelClient, 0)
	if err != nil {
		// The oversized transcript stays usable; try again next turn.
		s.logger.Error("transcript compaction failed", "session_id", conv.SessionID, "error", err)
		return
	}
	callbacks.Compaction(summary)
}

// normalizeArguments returns the argument payload as a JSON object string,
// substituting an empty object for anything unparseable.
func normalizeArguments(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "{}"
	}
	return string(raw)
}
