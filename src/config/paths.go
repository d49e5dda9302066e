package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// StoragePaths contains paths for application storage
type StoragePaths struct {
	DatabasePath   string
	MediaDirectory string
	LogDirectory   string
}

// GetDefaultStoragePaths returns default storage paths using XDG base directories
func GetDefaultStoragePaths() StoragePaths {
	// XDG_STATE_HOME holds runtime state: the conversation database,
	// downloaded media, and log files.
	return StoragePaths{
		DatabasePath:   filepath.Join(xdg.StateHome, "tars", "tars.db"),
		MediaDirectory: filepath.Join(xdg.StateHome, "tars", "media"),
		LogDirectory:   filepath.Join(xdg.StateHome, "tars", "logs"),
	}
}

// GetDefaultConfigPath returns the user configuration file path
func GetDefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tars", "config.json")
}
