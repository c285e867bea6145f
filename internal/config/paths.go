package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".notable"

// DataDir returns the base data directory for notable.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// SettingsPath returns the path to the TOML settings file.
func SettingsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// NotesDBPath returns the default bbolt database path for the local server.
func NotesDBPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "notes.db"), nil
}

// NotesDirPath returns the default directory for the markdown-file store.
func NotesDirPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "notes"), nil
}
