package tool_download

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, storage.MediaTypeAudio, classify(".mp3"))
	assert.Equal(t, storage.MediaTypeVideo, classify(".MP4"))
	assert.Equal(t, storage.MediaTypeImage, classify(".png"))
	assert.Equal(t, storage.MediaTypeOther, classify(".zip"))
	assert.Equal(t, storage.MediaTypeOther, classify(""))
}

func TestDownloadRecordsMediaFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		fmt.Fprint(w, "fake png bytes")
	}))
	defer server.Close()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	mediaDir := t.TempDir()
	tool, err := Tool(store.DB(), mediaDir)
	require.NoError(t, err)

	args := fmt.Sprintf(`{"url":%q,"filename":"pic.png"}`, server.URL+"/images/pic.png")
	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{Name: Name, Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	require.False(t, resp.IsError, string(resp.Content))

	var out DownloadOutput
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.Equal(t, storage.MediaTypeImage, out.FileType)
	assert.Equal(t, int64(len("fake png bytes")), out.SizeBytes)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))

	var count int
	require.NoError(t, store.DB().QueryRow(`SELECT COUNT(*) FROM media_files WHERE file_type = 'image'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDownloadRejectsBadScheme(t *testing.T) {
	tool, err := Tool(nil, t.TempDir())
	require.NoError(t, err)

	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{Name: Name, Arguments: json.RawMessage(`{"url":"file:///etc/passwd"}`)},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsError)
}

func TestDownloadNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	tool, err := Tool(nil, t.TempDir())
	require.NoError(t, err)

	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{Name: Name, Arguments: json.RawMessage(fmt.Sprintf(`{"url":%q}`, server.URL))},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsError)
	assert.Contains(t, string(resp.Content), "403")
}
