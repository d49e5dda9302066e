package main

import (
	"path/filepath"
	"testing"

	"github.com/Praneeth-Gandodi/Tars/src/storage"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToolbox(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	toolbox, err := createToolbox(store.DB(), t.TempDir())
	require.NoError(t, err)

	expected := []string{
		tools.WeatherName,
		tools.DatetimeName,
		tools.NewsName,
		tools.WikiName,
		tools.WebFetchName,
		tools.SysinfoName,
		tools.DownloadName,
		tools.ListFilesName,
		tools.ReadFileName,
		tools.WriteFileName,
		tools.SearchFilesName,
	}
	for _, name := range expected {
		assert.True(t, toolbox.HasTool(name), "missing tool %s", name)
	}
	assert.Len(t, toolbox.Tools(), len(expected))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("").String())
	assert.Equal(t, "WARN", parseLogLevel("nonsense").String())
}
