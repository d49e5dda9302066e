package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Praneeth-Gandodi/Tars/src/storage"
)

// SessionsCmd lists past sessions or shows one transcript
type SessionsCmd struct {
	Limit int   `default:"20" help:"How many sessions to list"`
	Show  int64 `help:"Show the transcript for a session id"`
}

func (s *SessionsCmd) Run(cli *CLI) error {
	ctx := context.Background()

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if s.Show != 0 {
		return showTranscript(ctx, store, s.Show)
	}
	return listSessions(ctx, store, s.Limit)
}

func listSessions(ctx context.Context, store *storage.DB, limit int) error {
	sessions, err := storage.ListSessions(ctx, store.DB(), limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %-30s %s\n", "ID", "STARTED", "MESSAGES", "ACTIVE", "MODEL", "TITLE")
	for _, sess := range sessions {
		model := ""
		if sess.ModelName != nil {
			model = *sess.ModelName
		}
		title := ""
		if sess.Title != nil {
			title = *sess.Title
		}
		fmt.Printf("%-6d %-20s %-10d %-8t %-30s %s\n",
			sess.ID,
			sess.StartTime.Format("2006-01-02 15:04:05"),
			sess.MessageCount,
			sess.IsActive,
			model,
			title)
	}
	return nil
}

func showTranscript(ctx context.Context, store *storage.DB, sessionID int64) error {
	info, err := storage.GetSessionByID(ctx, store.DB(), sessionID)
	if err != nil {
		return err
	}
	if info == nil {
		return fmt.Errorf("session %d not found", sessionID)
	}

	messages, err := storage.GetMessagesBySessionID(ctx, store.DB(), sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session %d, started %s, %d messages\n\n",
		info.ID, info.StartTime.Format("2006-01-02 15:04:05"), info.MessageCount)
	for _, msg := range messages {
		fmt.Printf("[%s] %s\n", strings.ToUpper(msg.Role), msg.Content)
	}
	return nil
}
