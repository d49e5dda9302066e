package tool_files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/spf13/afero"
)

// Tool name constants
const (
	ListName   = "list_files"
	ReadName   = "read_file"
	WriteName  = "write_file"
	SearchName = "search_files"
)

const maxReadSize = 1024 * 1024

// Extensions the read tool will open as text.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".csv": true, ".log": true, ".ini": true,
	".cfg": true, ".env": true, ".py": true, ".go": true, ".html": true,
	".css": true, ".js": true, ".xml": true, ".yaml": true, ".yml": true,
	".json": true,
}

// ListInput represents the parameters for list_files
type ListInput struct {
	Directory  string   `json:"directory" required:"true" description:"Directory to list, relative to the home directory"`
	Extensions []string `json:"extensions,omitempty" description:"Optional file extensions to filter by (e.g., ['pdf', 'txt'])"`
}

// ListOutput is the directory listing
type ListOutput struct {
	Directory string   `json:"directory"`
	Entries   []string `json:"entries"`
}

// ReadInput represents the parameters for read_file
type ReadInput struct {
	Path string `json:"path" required:"true" description:"Path of the file to read, relative to the home directory"`
}

// ReadOutput is the file content
type ReadOutput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// WriteInput represents the parameters for write_file
type WriteInput struct {
	Path    string `json:"path" required:"true" description:"Path of the file to write, relative to the home directory"`
	Content string `json:"content" required:"true" description:"Text content to write or append"`
	Mode    string `json:"mode,omitempty" description:"'w' to overwrite (default), 'a' to append"`
}

// WriteOutput is the write status
type WriteOutput struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// SearchInput represents the parameters for search_files
type SearchInput struct {
	Filename string `json:"filename" required:"true" description:"Name or partial name of the file to search for"`
	StartDir string `json:"start_dir,omitempty" description:"Directory to start from, relative to the home directory"`
}

// SearchOutput lists matching paths
type SearchOutput struct {
	Matches []string `json:"matches"`
}

// resolve joins a model-supplied path under base and rejects escapes.
func resolve(base, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.Join(base, rel))
	if cleaned != base && !strings.HasPrefix(cleaned, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the home directory: %s", rel)
	}
	return cleaned, nil
}

// ListFilesTool lists directory entries under the base directory
func ListFilesTool(fs afero.Fs, base string) (agent.Tool, error) {
	return agent.NewGenericTool(ListName,
		"List the files in a directory under the home directory, optionally filtered by extension.",
		func(ctx context.Context, input ListInput) (ListOutput, error) {
			dir, err := resolve(base, input.Directory)
			if err != nil {
				return ListOutput{}, err
			}
			infos, err := afero.ReadDir(fs, dir)
			if err != nil {
				if os.IsNotExist(err) {
					return ListOutput{}, fmt.Errorf("directory does not exist: %s", input.Directory)
				}
				return ListOutput{}, err
			}

			wanted := map[string]bool{}
			for _, ext := range input.Extensions {
				ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
				wanted["."+ext] = true
			}

			out := ListOutput{Directory: input.Directory, Entries: []string{}}
			for _, info := range infos {
				if len(wanted) > 0 {
					if info.IsDir() || !wanted[strings.ToLower(filepath.Ext(info.Name()))] {
						continue
					}
				}
				out.Entries = append(out.Entries, info.Name())
			}
			return out, nil
		})
}

// ReadFileTool reads a text file under the base directory
func ReadFileTool(fs afero.Fs, base string) (agent.Tool, error) {
	return agent.NewGenericTool(ReadName,
		"Read the content of a text file under the home directory.",
		func(ctx context.Context, input ReadInput) (ReadOutput, error) {
			path, err := resolve(base, input.Path)
			if err != nil {
				return ReadOutput{}, err
			}

			ext := strings.ToLower(filepath.Ext(path))
			if !textExtensions[ext] {
				return ReadOutput{}, fmt.Errorf("file type not supported: %s", ext)
			}

			info, err := fs.Stat(path)
			if err != nil {
				return ReadOutput{}, fmt.Errorf("file does not exist: %s", input.Path)
			}
			if info.Size() > maxReadSize {
				return ReadOutput{}, fmt.Errorf("file too large: %d bytes", info.Size())
			}

			data, err := afero.ReadFile(fs, path)
			if err != nil {
				return ReadOutput{}, err
			}
			return ReadOutput{Path: input.Path, Content: string(data)}, nil
		})
}

// WriteFileTool writes or appends to a file under the base directory
func WriteFileTool(fs afero.Fs, base string) (agent.Tool, error) {
	return agent.NewGenericTool(WriteName,
		"Write or append text content to a file under the home directory, creating parent directories as needed.",
		func(ctx context.Context, input WriteInput) (WriteOutput, error) {
			path, err := resolve(base, input.Path)
			if err != nil {
				return WriteOutput{}, err
			}
			if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return WriteOutput{}, err
			}

			existed, err := afero.Exists(fs, path)
			if err != nil {
				return WriteOutput{}, err
			}

			if input.Mode == "a" && existed {
				f, err := fs.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
				if err != nil {
					return WriteOutput{}, err
				}
				defer f.Close()
				if _, err := f.WriteString(input.Content); err != nil {
					return WriteOutput{}, err
				}
				return WriteOutput{Path: input.Path, Status: "appended"}, nil
			}

			if err := afero.WriteFile(fs, path, []byte(input.Content), 0644); err != nil {
				return WriteOutput{}, err
			}
			status := "written"
			if !existed {
				status = "created"
			}
			return WriteOutput{Path: input.Path, Status: status}, nil
		})
}

// SearchFilesTool searches recursively by partial file name
func SearchFilesTool(fs afero.Fs, base string) (agent.Tool, error) {
	return agent.NewGenericTool(SearchName,
		"Recursively search for a file by name or partial name under the home directory.",
		func(ctx context.Context, input SearchInput) (SearchOutput, error) {
			start, err := resolve(base, input.StartDir)
			if err != nil {
				return SearchOutput{}, err
			}
			if ok, _ := afero.DirExists(fs, start); !ok {
				return SearchOutput{}, fmt.Errorf("start directory does not exist: %s", input.StartDir)
			}

			needle := strings.ToLower(input.Filename)
			out := SearchOutput{Matches: []string{}}
			err = afero.Walk(fs, start, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil
				}
				if !info.IsDir() && strings.Contains(strings.ToLower(info.Name()), needle) {
					out.Matches = append(out.Matches, path)
				}
				return nil
			})
			if err != nil {
				return SearchOutput{}, err
			}
			return out, nil
		})
}
