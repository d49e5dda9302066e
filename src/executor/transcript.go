package executor

import (
	"context"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// The durable message log is advisory: a failed write is logged and the
// in-memory transcript keeps going, so a storage hiccup can't kill a live
// conversation. The cost is a possible gap in the durable log.

// appendUserMessage appends a user message to the working transcript and
// persists it. Returns the durable row id, or 0 when persistence failed.
func (s *Service) appendUserMessage(ctx context.Context, conv *ConversationContext, content string) int64 {
	conv.Append(&aisdk.Message{Role: "user", Content: content})

	id, err := storage.CreateMessage(ctx, s.database, &storage.Message{
		SessionID: conv.SessionID,
		Role:      "user",
		Content:   content,
		ModelID:   &conv.ModelID,
	})
	if err != nil {
		s.logger.Error("failed to persist user message", "session_id", conv.SessionID, "error", err)
		return 0
	}
	return id
}

// appendAssistantMessage appends a final assistant message to the working
// transcript and persists it.
func (s *Service) appendAssistantMessage(ctx context.Context, conv *ConversationContext, content string) int64 {
	conv.Append(&aisdk.Message{Role: "assistant", Content: content})

	id, err := storage.CreateMessage(ctx, s.database, &storage.Message{
		SessionID: conv.SessionID,
		Role:      "assistant",
		Content:   content,
		ModelID:   &conv.ModelID,
	})
	if err != nil {
		s.logger.Error("failed to persist assistant message", "session_id", conv.SessionID, "error", err)
		return 0
	}
	return id
}

// appendToolMessage appends a tool result message to the working transcript
// only. Durable persistence of tool results goes through
// storage.SaveToolResponse so the tool_calls update and the message insert
// stay atomic.
func (s *Service) appendToolMessage(conv *ConversationContext, call *aisdk.ToolCall, content string) {
	conv.Append(&aisdk.Message{
		Role:       "tool",
		Content:    content,
		Name:       call.Function.Name,
		ToolCallID: call.ID,
	})
}
