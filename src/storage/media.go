package storage

import (
	"context"
	"time"
)

// Media file types accepted by the media_files table.
const (
	MediaTypeAudio = "audio"
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
	MediaTypeOther = "other"
)

// CreateMediaFile records a tool-produced artifact and returns its id.
func CreateMediaFile(ctx context.Context, db Execer, mf *MediaFile) (int64, error) {
	if mf.CreatedAt.IsZero() {
		mf.CreatedAt = time.Now()
	}

	query := `INSERT INTO media_files (message_id, file_path, file_type, created_at, metadata) VALUES (?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, mf.MessageID, mf.FilePath, mf.FileType, mf.CreatedAt, mf.Metadata)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	mf.ID = id
	return id, nil
}
