package tools

// Barrel-style re-exports so callers can register the whole toolset without
// importing every tool package individually.

import (
	"database/sql"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_datetime"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_download"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_files"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_news"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_sysinfo"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_weather"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_webfetch"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools/tool_wiki"
	"github.com/spf13/afero"
)

// Tool name constants - re-exported from individual packages
const (
	WeatherName     = tool_weather.Name
	DatetimeName    = tool_datetime.Name
	NewsName        = tool_news.Name
	WikiName        = tool_wiki.Name
	WebFetchName    = tool_webfetch.Name
	SysinfoName     = tool_sysinfo.Name
	DownloadName    = tool_download.Name
	ListFilesName   = tool_files.ListName
	ReadFileName    = tool_files.ReadName
	WriteFileName   = tool_files.WriteName
	SearchFilesName = tool_files.SearchName
)

func WeatherTool() (agent.Tool, error)  { return tool_weather.Tool() }
func NewsTool() (agent.Tool, error)     { return tool_news.Tool() }
func WikiTool() (agent.Tool, error)     { return tool_wiki.Tool() }
func WebFetchTool() (agent.Tool, error) { return tool_webfetch.Tool() }
func DatetimeTool() agent.Tool          { return tool_datetime.Tool() }
func SysinfoTool() agent.Tool           { return tool_sysinfo.Tool() }

func DownloadTool(db *sql.DB, mediaDir string) (agent.Tool, error) {
	return tool_download.Tool(db, mediaDir)
}

func ListFilesTool(fs afero.Fs, base string) (agent.Tool, error) {
	return tool_files.ListFilesTool(fs, base)
}
func ReadFileTool(fs afero.Fs, base string) (agent.Tool, error) {
	return tool_files.ReadFileTool(fs, base)
}
func WriteFileTool(fs afero.Fs, base string) (agent.Tool, error) {
	return tool_files.WriteFileTool(fs, base)
}
func SearchFilesTool(fs afero.Fs, base string) (agent.Tool, error) {
	return tool_files.SearchFilesTool(fs, base)
}
