package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// CreateSession inserts an active session row and returns its id.
func CreateSession(ctx context.Context, db Execer, modelID *int64, title *string) (int64, error) {
	query := `INSERT INTO sessions (start_time, title, model_id, is_active) VALUES (?, ?, ?, 1)`
	res, err := db.ExecContext(ctx, query, time.Now(), title, modelID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// EndSession sets end_time and clears is_active. Ending an already ended
// session is a harmless no-op update.
func EndSession(ctx context.Context, db Execer, sessionID int64) error {
	query := `UPDATE sessions SET end_time = ?, is_active = 0 WHERE id = ? AND is_active = 1`
	_, err := db.ExecContext(ctx, query, time.Now(), sessionID)
	return err
}

// GetSessionByID retrieves a session joined with its model's provider and
// name. Returns nil when the session does not exist.
func GetSessionByID(ctx context.Context, db sqlscan.Querier, sessionID int64) (*SessionInfo, error) {
	query := `
	SELECT
		s.id,
		s.start_time,
		s.end_time,
		s.title,
		s.message_count,
		s.is_active,
		m.model_name,
		m.provider
	FROM sessions s
	LEFT JOIN models m ON s.model_id = m.id
	WHERE s.id = ?`
	var info SessionInfo
	err := sqlscan.Get(ctx, db, &info, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// ListSessions returns the most recent sessions ordered by start time
// descending.
func ListSessions(ctx context.Context, db sqlscan.Querier, limit int) ([]SessionInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
	SELECT
		s.id,
		s.start_time,
		s.end_time,
		s.title,
		s.message_count,
		s.is_active,
		m.model_name,
		m.provider
	FROM sessions s
	LEFT JOIN models m ON s.model_id = m.id
	ORDER BY s.start_time DESC
	LIMIT ?`
	var sessions []SessionInfo
	if err := sqlscan.Select(ctx, db, &sessions, query, limit); err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecomputeMessageCount recounts the session's user and assistant messages
// and writes the result. Counting instead of incrementing keeps the cache
// honest if rows are ever deleted or roles reclassified.
func RecomputeMessageCount(ctx context.Context, db ExecQuerier, sessionID int64) (int, error) {
	var count int
	err := sqlscan.Get(ctx, db, &count,
		`SELECT COUNT(*) FROM messages WHERE session_id = ? AND role IN ('user', 'assistant')`,
		sessionID)
	if err != nil {
		return 0, err
	}

	_, err = db.ExecContext(ctx, `UPDATE sessions SET message_count = ? WHERE id = ?`, count, sessionID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
