package config

import (
	"os"
	"path/filepath"
)

// GetFocusFlowHome returns FOCUSFLOW_HOME or ~/.focusflow default
func GetFocusFlowHome() string {
	home := os.Getenv("FOCUSFLOW_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".focusflow"
		}
		return filepath.Join(homeDir, ".focusflow")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FOCUSFLOW_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetFocusFlowHome(), "state.db")
}

// GetSettingsPath returns $FOCUSFLOW_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFocusFlowHome(), "settings.json")
}

// GetSnapshotDir returns $FOCUSFLOW_HOME/snapshots, where the JSON
// interchange documents live
func GetSnapshotDir() string {
	return filepath.Join(GetFocusFlowHome(), "snapshots")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
