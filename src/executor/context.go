package executor

import (
	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
)

// ConversationContext carries all per-conversation state: the in-memory
// working transcript, the active session and model ids, and the turn
// counter. It is owned by the caller and threaded through every operation,
// so one process can run any number of independent conversations.
type ConversationContext struct {
	SessionID int64
	ModelID   int64

	// SystemPrompt is the instruction the working transcript is (re)seeded
	// with, including after compaction.
	SystemPrompt string

	// Messages is the working transcript sent to the model. Compaction may
	// shrink it; the durable message log never shrinks.
	Messages []*aisdk.Message

	// TurnCount counts completed user turns since the last compaction.
	TurnCount int

	ended bool
}

// NewConversationContext seeds a working transcript with the system prompt.
func NewConversationContext(sessionID, modelID int64, systemPrompt string) *ConversationContext {
	return &ConversationContext{
		SessionID:    sessionID,
		ModelID:      modelID,
		SystemPrompt: systemPrompt,
		Messages: []*aisdk.Message{
			{Role: "system", Content: systemPrompt},
		},
	}
}

// Append adds one message to the in-memory working transcript.
func (cc *ConversationContext) Append(msg *aisdk.Message) {
	cc.Messages = append(cc.Messages, msg)
}

// Window returns the last n transcript messages in chronological order.
func (cc *ConversationContext) Window(n int) []*aisdk.Message {
	if n <= 0 || n >= len(cc.Messages) {
		return cc.Messages
	}
	return cc.Messages[len(cc.Messages)-n:]
}

// Ended reports whether the session behind this context has been closed.
func (cc *ConversationContext) Ended() bool {
	return cc.ended
}
