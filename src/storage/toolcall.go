package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// CreateToolCall records an attempted tool invocation before execution. The
// response column stays NULL until SaveToolResponse fills it in, so a crash
// mid-execution still leaves an auditable record.
func CreateToolCall(ctx context.Context, db Execer, toolName, argumentsJSON string, triggeringMessageID *int64) (int64, error) {
	query := `INSERT INTO tool_calls (tool_name, arguments, timestamp, triggering_message_id) VALUES (?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query, toolName, argumentsJSON, time.Now(), triggeringMessageID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SaveToolResponse updates the tool call's response and appends the linked
// tool message in one transaction. Either both rows land or neither does, so
// a tool message can never reference an unfilled tool call.
func SaveToolResponse(ctx context.Context, db *sql.DB, toolCallID int64, response string, sessionID int64, modelID *int64) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE tool_calls SET response = ? WHERE id = ?`, response, toolCallID); err != nil {
		return 0, fmt.Errorf("failed to update tool call: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO messages (session_id, timestamp, role, content, tool_call_id, model_id) VALUES (?, ?, 'tool', ?, ?, ?)`,
		sessionID, time.Now(), response, toolCallID, modelID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tool message: %w", err)
	}
	messageID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tool response: %w", err)
	}

	// Tool rows don't count toward message_count, but the recompute keeps
	// the cache fresh after every message insert.
	if _, err := RecomputeMessageCount(ctx, db, sessionID); err != nil {
		return 0, err
	}
	return messageID, nil
}

// GetToolCallByID retrieves a tool call row by id.
func GetToolCallByID(ctx context.Context, db sqlscan.Querier, id int64) (*ToolCall, error) {
	var tc ToolCall
	err := sqlscan.Get(ctx, db, &tc,
		`SELECT id, tool_name, arguments, response, timestamp, triggering_message_id FROM tool_calls WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}
