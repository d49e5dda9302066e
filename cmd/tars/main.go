package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the main CLI structure
type CLI struct {
	Config   string `help:"Path to config file"`
	Model    string `short:"m" help:"Override the configured model"`
	NoTools  bool   `help:"Disable tool usage"`
	LogLevel string `default:"" help:"Log level (debug, info, warn, error)"`

	Chat     ChatCmd     `cmd:"" default:"1" help:"Start an interactive conversation (default)"`
	Prompt   PromptCmd   `cmd:"" help:"Execute a single prompt"`
	Sessions SessionsCmd `cmd:"" help:"List past sessions or show a transcript"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tars"),
		kong.Description("TARS, a tool-using AI assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
