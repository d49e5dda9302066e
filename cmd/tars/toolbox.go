package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools"
	"github.com/spf13/afero"
)

// createToolbox builds the full toolset. File tools are rooted at the home
// directory; the download tool records artifacts in the database.
func createToolbox(db *sql.DB, mediaDir string) (*agent.DefaultToolbox, error) {
	toolbox := agent.NewToolbox[agent.Tool]()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	fs := afero.NewOsFs()

	type constructor func() (agent.Tool, error)
	constructors := []constructor{
		tools.WeatherTool,
		tools.NewsTool,
		tools.WikiTool,
		tools.WebFetchTool,
		func() (agent.Tool, error) { return tools.DatetimeTool(), nil },
		func() (agent.Tool, error) { return tools.SysinfoTool(), nil },
		func() (agent.Tool, error) { return tools.DownloadTool(db, mediaDir) },
		func() (agent.Tool, error) { return tools.ListFilesTool(fs, home) },
		func() (agent.Tool, error) { return tools.ReadFileTool(fs, home) },
		func() (agent.Tool, error) { return tools.WriteFileTool(fs, home) },
		func() (agent.Tool, error) { return tools.SearchFilesTool(fs, home) },
	}

	for _, build := range constructors {
		tool, err := build()
		if err != nil {
			return nil, fmt.Errorf("failed to create tool: %w", err)
		}
		if err := toolbox.RegisterTool(tool); err != nil {
			return nil, err
		}
	}

	return toolbox, nil
}
