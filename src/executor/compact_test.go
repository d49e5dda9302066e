package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactReplacesWorkingTranscriptOnly(t *testing.T) {
	svc, store := newTestService(t, ServiceConfig{SystemPrompt: "You are TARS."})
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "groq", "openai/gpt-oss-120b", "", nil)
	require.NoError(t, err)

	client := &scriptedClient{responses: []*aisdk.Message{
		textMessage("Saturn has 146 moons."),
		textMessage("Titan is the largest."),
		textMessage("We talked about Saturn's moons, including Titan."),
	}}

	_, err = svc.RunTurn(ctx, conv, client, nil, nil, "How many moons does Saturn have?")
	require.NoError(t, err)
	_, err = svc.RunTurn(ctx, conv, client, nil, nil, "Which is biggest?")
	require.NoError(t, err)

	before, err := storage.CountMessages(ctx, store.DB())
	require.NoError(t, err)
	require.Equal(t, 4, before)

	summary, err := svc.Compact(ctx, conv, client, 0)
	require.NoError(t, err)
	assert.Equal(t, "We talked about Saturn's moons, including Titan.", summary)

	// Working set collapses to system prompt plus summary.
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, "system", conv.Messages[0].Role)
	assert.Equal(t, "You are TARS.", conv.Messages[0].Content)
	assert.Equal(t, "assistant", conv.Messages[1].Role)
	assert.Equal(t, summary, conv.Messages[1].Content)
	assert.Zero(t, conv.TurnCount)

	// The durable log is untouched.
	after, err := storage.CountMessages(ctx, store.DB())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// The summarizer saw the recent history plus the summarize instruction.
	summarizeReq := client.requests[len(client.requests)-1]
	last := summarizeReq.Messages[len(summarizeReq.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, "Summarize our previous conversation")
	assert.Empty(t, summarizeReq.Tools, "the summarizer call advertises no tools")
}

func TestCompactionFiresAfterConfiguredTurns(t *testing.T) {
	svc, store := newTestService(t, ServiceConfig{SystemPrompt: "You are TARS.", CompactEvery: 2})
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "groq", "openai/gpt-oss-120b", "", nil)
	require.NoError(t, err)

	client := &scriptedClient{responses: []*aisdk.Message{
		textMessage("one"),
		textMessage("two"), // second turn completes, compaction follows
		textMessage("summary of one and two"),
		textMessage("three"),
	}}

	var compactions []string
	callbacks := &Callbacks{OnCompaction: func(summary string) { compactions = append(compactions, summary) }}

	_, err = svc.RunTurn(ctx, conv, client, nil, callbacks, "first")
	require.NoError(t, err)
	assert.Empty(t, compactions)
	assert.Equal(t, 1, conv.TurnCount)

	_, err = svc.RunTurn(ctx, conv, client, nil, callbacks, "second")
	require.NoError(t, err)
	require.Equal(t, []string{"summary of one and two"}, compactions)
	assert.Zero(t, conv.TurnCount)
	require.Len(t, conv.Messages, 2)

	// The next turn builds on the compacted working set.
	reply, err := svc.RunTurn(ctx, conv, client, nil, callbacks, "third")
	require.NoError(t, err)
	assert.Equal(t, "three", reply)

	// 3 turns persisted regardless of compaction.
	count, err := storage.CountMessages(ctx, store.DB())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestCompactFailureLeavesTranscriptIntact(t *testing.T) {
	svc, _ := newTestService(t, ServiceConfig{SystemPrompt: "You are TARS."})
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "groq", "openai/gpt-oss-120b", "", nil)
	require.NoError(t, err)

	client := &scriptedClient{responses: []*aisdk.Message{textMessage("hello")}}
	_, err = svc.RunTurn(ctx, conv, client, nil, nil, "hi")
	require.NoError(t, err)

	wantLen := len(conv.Messages)

	failing := &scriptedClient{errs: []error{errors.New("rate limited")}}
	_, err = svc.Compact(ctx, conv, failing, 0)
	require.Error(t, err)

	assert.Len(t, conv.Messages, wantLen)
	assert.Equal(t, 1, conv.TurnCount)
}

func TestCompactRequiresModelClient(t *testing.T) {
	svc, _ := newTestService(t, ServiceConfig{SystemPrompt: "You are TARS."})
	conv := NewConversationContext(1, 1, "You are TARS.")

	_, err := svc.Compact(context.Background(), conv, nil, 0)
	require.ErrorIs(t, err, ErrModelClientRequired)
}
