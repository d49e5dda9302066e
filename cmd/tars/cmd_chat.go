package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Praneeth-Gandodi/Tars/src/aisdk"
	"github.com/Praneeth-Gandodi/Tars/src/executor"
	"github.com/charmbracelet/lipgloss"
)

// ChatCmd represents the interactive chat command
type ChatCmd struct {
	Title string `help:"Title for the new session"`
}

// control classifies a line of input as a loop command or ordinary text.
type control int

const (
	controlNone control = iota
	controlExit
	controlSummarize
)

func controlFor(input string) control {
	switch strings.ToLower(input) {
	case "q", "quit", "exit", "stop", "/exit", "/quit":
		return controlExit
	case "/summarize":
		return controlSummarize
	}
	return controlNone
}

const maxInputSize = 1024 * 1024

// newInputScanner returns a line scanner sized for pasted input well beyond
// bufio's default 64KB token limit.
func newInputScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputSize)
	return scanner
}

var (
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	toolStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func (c *ChatCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logger := createChatLogger(cli.LogLevel)

	appInstance, toolbox, modelClient, err := setupApp(ctx, cli, logger)
	if err != nil {
		return err
	}
	defer appInstance.Close()

	var title *string
	if c.Title != "" {
		title = &c.Title
	}
	conv, err := appInstance.Service.StartConversation(ctx,
		appInstance.Config.API.Provider,
		appInstance.Config.Agent.Model,
		appInstance.Config.Agent.ModelVersion,
		title)
	if err != nil {
		return err
	}

	callbacks := &executor.Callbacks{
		OnToolCall: func(tc aisdk.ToolCall) error {
			fmt.Println(toolStyle.Render(fmt.Sprintf("  [tool] %s %s", tc.Function.Name, string(tc.Function.Arguments))))
			return nil
		},
		OnCompaction: func(summary string) {
			fmt.Println(toolStyle.Render("  [conversation summarized]"))
		},
	}

	fmt.Printf("Session %d started with %s. Type 'exit' to quit, '/summarize' to compact.\n\n",
		conv.SessionID, appInstance.Config.Agent.Model)

	scanner := newInputScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render(">> You: "))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch controlFor(input) {
		case controlExit:
			if err := appInstance.Service.EndConversation(ctx, conv); err != nil {
				return err
			}
			fmt.Println(assistantStyle.Render(">> TARS: ") + "Session ended. Goodbye.")
			return nil
		case controlSummarize:
			summary, err := appInstance.Service.Compact(ctx, conv, modelClient, 0)
			if err != nil {
				fmt.Println(errorStyle.Render("summarization failed: " + err.Error()))
				continue
			}
			fmt.Println(assistantStyle.Render(">> TARS: ") + summary)
			continue
		}

		reply, err := appInstance.Service.RunTurn(ctx, conv, modelClient, toolbox, callbacks, input)
		if err != nil && reply == "" {
			fmt.Println(errorStyle.Render("error: " + err.Error()))
			continue
		}
		fmt.Println(assistantStyle.Render(">> TARS: ") + reply)
		fmt.Println()
	}

	return appInstance.Service.EndConversation(ctx, conv)
}
