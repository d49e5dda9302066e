package storage

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// CreateMessage appends one message row and refreshes the owning session's
// message count cache. Returns the new row id.
func CreateMessage(ctx context.Context, db ExecQuerier, msg *Message) (int64, error) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	query := `INSERT INTO messages (session_id, timestamp, role, content, tool_call_id, model_id, user_id)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query,
		msg.SessionID, msg.Timestamp, msg.Role, msg.Content, msg.ToolCallID, msg.ModelID, msg.UserID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	msg.ID = id

	if _, err := RecomputeMessageCount(ctx, db, msg.SessionID); err != nil {
		return 0, err
	}
	return id, nil
}

// GetLastMessages returns the last N messages in chronological order.
func GetLastMessages(ctx context.Context, db sqlscan.Querier, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, session_id, timestamp, role, content, tool_call_id, model_id, user_id
	FROM messages ORDER BY id DESC LIMIT ?`
	var messages []Message
	if err := sqlscan.Select(ctx, db, &messages, query, limit); err != nil {
		return nil, err
	}

	// Rows come back newest first; callers get chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetMessagesBySessionID returns all of a session's messages in
// chronological order.
func GetMessagesBySessionID(ctx context.Context, db sqlscan.Querier, sessionID int64) ([]Message, error) {
	query := `SELECT id, session_id, timestamp, role, content, tool_call_id, model_id, user_id
	FROM messages WHERE session_id = ? ORDER BY id`
	var messages []Message
	if err := sqlscan.Select(ctx, db, &messages, query, sessionID); err != nil {
		return nil, err
	}
	return messages, nil
}

// CountMessages returns the total number of message rows.
func CountMessages(ctx context.Context, db sqlscan.Querier) (int, error) {
	var count int
	err := sqlscan.Get(ctx, db, &count, `SELECT COUNT(*) FROM messages`)
	return count, err
}
