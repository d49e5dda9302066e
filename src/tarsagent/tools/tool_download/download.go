package tool_download

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/storage"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
	"github.com/google/uuid"
)

// Tool name constant
const Name = "download_file"

const downloadPrompt = `Downloads a file from a URL into the local media directory.

WHEN TO USE THIS TOOL:
- Use when the user asks to save or download a file, image, audio, or video from a link

HOW TO USE:
- Provide the URL of the file to download
- Optionally provide a filename; otherwise one is derived from the URL

LIMITATIONS:
- Maximum download size is 500MB
- Only http and https URLs are supported`

const maxDownloadSize = 500 * 1024 * 1024

// DownloadInput represents the parameters for download_file
type DownloadInput struct {
	URL      string `json:"url" required:"true" description:"The URL of the file to download"`
	Filename string `json:"filename,omitempty" description:"Optional filename; derived from the URL when omitted"`
}

// DownloadOutput reports where the file landed
type DownloadOutput struct {
	Path      string `json:"path"`
	FileType  string `json:"file_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// classify maps a file extension to a media_files type.
func classify(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp3", ".wav", ".flac", ".ogg", ".m4a":
		return storage.MediaTypeAudio
	case ".mp4", ".mkv", ".webm", ".mov", ".avi":
		return storage.MediaTypeVideo
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg":
		return storage.MediaTypeImage
	default:
		return storage.MediaTypeOther
	}
}

// Tool returns the download_file tool definition. Downloads are recorded in
// the media_files table so sessions can list their artifacts later.
func Tool(db *sql.DB, mediaDir string) (agent.Tool, error) {
	return agent.NewGenericTool(Name, downloadPrompt, func(ctx context.Context, input DownloadInput) (DownloadOutput, error) {
		if !strings.HasPrefix(input.URL, "http://") && !strings.HasPrefix(input.URL, "https://") {
			return DownloadOutput{}, fmt.Errorf("URL must start with http:// or https://")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.URL, nil)
		if err != nil {
			return DownloadOutput{}, fmt.Errorf("failed to create request: %v", err)
		}
		req.Header.Set("User-Agent", "tars/1.0")

		client := &http.Client{Timeout: 10 * time.Minute}
		resp, err := client.Do(req)
		if err != nil {
			return DownloadOutput{}, fmt.Errorf("download failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return DownloadOutput{}, fmt.Errorf("request failed with status code: %d", resp.StatusCode)
		}

		name := input.Filename
		if name == "" {
			name = path.Base(resp.Request.URL.Path)
		}
		name = filepath.Base(name)
		if name == "" || name == "." || name == "/" {
			name = "download"
		}
		// A short unique prefix avoids clobbering earlier downloads with
		// the same name.
		name = uuid.New().String()[:8] + "_" + name

		if err := os.MkdirAll(mediaDir, 0755); err != nil {
			return DownloadOutput{}, fmt.Errorf("failed to create media directory: %v", err)
		}
		dest := filepath.Join(mediaDir, name)

		f, err := os.Create(dest)
		if err != nil {
			return DownloadOutput{}, fmt.Errorf("failed to create file: %v", err)
		}
		written, err := io.Copy(f, io.LimitReader(resp.Body, maxDownloadSize))
		closeErr := f.Close()
		if err != nil {
			os.Remove(dest)
			return DownloadOutput{}, fmt.Errorf("failed to write file: %v", err)
		}
		if closeErr != nil {
			return DownloadOutput{}, fmt.Errorf("failed to close file: %v", closeErr)
		}

		fileType := classify(filepath.Ext(dest))
		if db != nil {
			meta, _ := json.Marshal(map[string]interface{}{
				"source_url":   input.URL,
				"content_type": resp.Header.Get("Content-Type"),
				"size_bytes":   written,
			})
			metaStr := string(meta)
			if _, err := storage.CreateMediaFile(ctx, db, &storage.MediaFile{
				FilePath: dest,
				FileType: fileType,
				Metadata: &metaStr,
			}); err != nil {
				toolsutil.GetLogger().Error("failed to record media file", "path", dest, "error", err)
			}
		}

		toolsutil.GetLogger().Info("downloaded file", "url", input.URL, "path", dest, "bytes", written)
		return DownloadOutput{Path: dest, FileType: fileType, SizeBytes: written}, nil
	})
}
