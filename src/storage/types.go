package storage

import "time"

// Model identifies a completion model. Rows are created lazily on first use
// and never mutated. ModelVersion is stored as the empty string when absent;
// the empty string participates in the uniqueness key so a versionless row
// and a versioned row are distinct.
type Model struct {
	ID           int64  `json:"id" db:"id"`
	Provider     string `json:"provider" db:"provider"`
	ModelName    string `json:"model_name" db:"model_name"`
	ModelVersion string `json:"model_version" db:"model_version"`
}

// Session is one bounded run of the conversational loop.
type Session struct {
	ID           int64      `json:"id" db:"id"`
	StartTime    time.Time  `json:"start_time" db:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" db:"end_time"`
	Title        *string    `json:"title,omitempty" db:"title"`
	MessageCount int        `json:"message_count" db:"message_count"`
	ModelID      *int64     `json:"model_id,omitempty" db:"model_id"`
	IsActive     bool       `json:"is_active" db:"is_active"`
}

// SessionInfo is a session row joined with its model's provider and name.
type SessionInfo struct {
	ID           int64      `json:"id" db:"id"`
	StartTime    time.Time  `json:"start_time" db:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" db:"end_time"`
	Title        *string    `json:"title,omitempty" db:"title"`
	MessageCount int        `json:"message_count" db:"message_count"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	ModelName    *string    `json:"model_name,omitempty" db:"model_name"`
	Provider     *string    `json:"provider,omitempty" db:"provider"`
}

// Message is one conversation turn unit. Append-only; id order is the
// canonical chronological order.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SessionID  int64     `json:"session_id" db:"session_id"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	Role       string    `json:"role" db:"role"`
	Content    string    `json:"content" db:"content"`
	ToolCallID *int64    `json:"tool_call_id,omitempty" db:"tool_call_id"`
	ModelID    *int64    `json:"model_id,omitempty" db:"model_id"`
	UserID     *int64    `json:"user_id,omitempty" db:"user_id"`
}

// ToolCall records one tool invocation requested by the model. The row is
// created with a NULL response before execution and updated exactly once
// with the result.
type ToolCall struct {
	ID                  int64     `json:"id" db:"id"`
	ToolName            string    `json:"tool_name" db:"tool_name"`
	Arguments           string    `json:"arguments" db:"arguments"`
	Response            *string   `json:"response,omitempty" db:"response"`
	Timestamp           time.Time `json:"timestamp" db:"timestamp"`
	TriggeringMessageID *int64    `json:"triggering_message_id,omitempty" db:"triggering_message_id"`
}

// MediaFile records an artifact produced by a tool, like a download.
type MediaFile struct {
	ID        int64     `json:"id" db:"id"`
	MessageID *int64    `json:"message_id,omitempty" db:"message_id"`
	FilePath  string    `json:"file_path" db:"file_path"`
	FileType  string    `json:"file_type" db:"file_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Metadata  *string   `json:"metadata,omitempty" db:"metadata"`
}
