package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetOrCreateModelIdempotent(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	first, err := GetOrCreateModel(ctx, store.DB(), "groq", "openai/gpt-oss-120b", "")
	require.NoError(t, err)

	second, err := GetOrCreateModel(ctx, store.DB(), "groq", "openai/gpt-oss-120b", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM models`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetOrCreateModelVersionIsPartOfKey(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	unversioned, err := GetOrCreateModel(ctx, store.DB(), "groq", "llama-3.3-70b", "")
	require.NoError(t, err)

	versioned, err := GetOrCreateModel(ctx, store.DB(), "groq", "llama-3.3-70b", "versatile")
	require.NoError(t, err)

	assert.NotEqual(t, unversioned, versioned)
}

func TestSessionLifecycle(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	modelID, err := GetOrCreateModel(ctx, store.DB(), "groq", "openai/gpt-oss-120b", "")
	require.NoError(t, err)

	title := "evening chat"
	sessionID, err := CreateSession(ctx, store.DB(), &modelID, &title)
	require.NoError(t, err)

	info, err := GetSessionByID(ctx, store.DB(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.True(t, info.IsActive)
	assert.Nil(t, info.EndTime)
	require.NotNil(t, info.ModelName)
	assert.Equal(t, "openai/gpt-oss-120b", *info.ModelName)
	require.NotNil(t, info.Provider)
	assert.Equal(t, "groq", *info.Provider)

	require.NoError(t, EndSession(ctx, store.DB(), sessionID))
	// Ending twice is a no-op.
	require.NoError(t, EndSession(ctx, store.DB(), sessionID))

	info, err = GetSessionByID(ctx, store.DB(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.False(t, info.IsActive)
	assert.NotNil(t, info.EndTime)
}

func TestGetSessionByIDNotFound(t *testing.T) {
	store := openTestDB(t)

	info, err := GetSessionByID(context.Background(), store.DB(), 9999)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestMessageCountTracksUserAndAssistantOnly(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	sessionID, err := CreateSession(ctx, store.DB(), nil, nil)
	require.NoError(t, err)

	_, err = CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "system", Content: "be helpful"})
	require.NoError(t, err)
	_, err = CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "user", Content: "hello"})
	require.NoError(t, err)
	_, err = CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "assistant", Content: "hi there"})
	require.NoError(t, err)

	tcID, err := CreateToolCall(ctx, store.DB(), "get_weather", `{"place":"Paris"}`, nil)
	require.NoError(t, err)
	_, err = SaveToolResponse(ctx, store.DB(), tcID, `{"temperature":15}`, sessionID, nil)
	require.NoError(t, err)

	info, err := GetSessionByID(ctx, store.DB(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 2, info.MessageCount, "system and tool rows must not count")
}

func TestSaveToolResponseLinksMessageToToolCall(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	sessionID, err := CreateSession(ctx, store.DB(), nil, nil)
	require.NoError(t, err)

	userID, err := CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "user", Content: "weather in Paris?"})
	require.NoError(t, err)

	tcID, err := CreateToolCall(ctx, store.DB(), "get_weather", `{"place":"Paris"}`, &userID)
	require.NoError(t, err)

	tc, err := GetToolCallByID(ctx, store.DB(), tcID)
	require.NoError(t, err)
	assert.Nil(t, tc.Response, "response must be NULL before execution")
	require.NotNil(t, tc.TriggeringMessageID)
	assert.Equal(t, userID, *tc.TriggeringMessageID)

	msgID, err := SaveToolResponse(ctx, store.DB(), tcID, `{"temperature":15,"windspeed":10}`, sessionID, nil)
	require.NoError(t, err)

	tc, err = GetToolCallByID(ctx, store.DB(), tcID)
	require.NoError(t, err)
	require.NotNil(t, tc.Response)
	assert.Equal(t, `{"temperature":15,"windspeed":10}`, *tc.Response)

	messages, err := GetMessagesBySessionID(ctx, store.DB(), sessionID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	last := messages[len(messages)-1]
	assert.Equal(t, msgID, last.ID)
	assert.Equal(t, "tool", last.Role)
	require.NotNil(t, last.ToolCallID)
	assert.Equal(t, tcID, *last.ToolCallID)
}

func TestGetLastMessagesChronological(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	sessionID, err := CreateSession(ctx, store.DB(), nil, nil)
	require.NoError(t, err)

	contents := []string{"one", "two", "three", "four", "five"}
	for _, c := range contents {
		_, err := CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "user", Content: c})
		require.NoError(t, err)
	}

	messages, err := GetLastMessages(ctx, store.DB(), 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "three", messages[0].Content)
	assert.Equal(t, "four", messages[1].Content)
	assert.Equal(t, "five", messages[2].Content)
}

func TestCreateMediaFile(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	sessionID, err := CreateSession(ctx, store.DB(), nil, nil)
	require.NoError(t, err)
	msgID, err := CreateMessage(ctx, store.DB(), &Message{SessionID: sessionID, Role: "assistant", Content: "saved"})
	require.NoError(t, err)

	meta := `{"source_url":"https://example.com/clip.mp4"}`
	id, err := CreateMediaFile(ctx, store.DB(), &MediaFile{
		MessageID: &msgID,
		FilePath:  "/tmp/clip.mp4",
		FileType:  MediaTypeVideo,
		Metadata:  &meta,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tars.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-apply migrations.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	var count int
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 1, count)
}
