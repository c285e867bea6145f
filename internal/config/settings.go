package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultServerAddr = "127.0.0.1:8484"

const (
	envAPIBaseURL = "NOTABLE_API_URL"
	envBackendURL = "NOTABLE_BACKEND_URL"
	envLogLevel   = "NOTABLE_LOG_LEVEL"
)

// Settings is the persisted TOML configuration. Environment variables
// override the file: NOTABLE_API_URL, NOTABLE_BACKEND_URL, NOTABLE_LOG_LEVEL.
type Settings struct {
	API     APIConfig     `toml:"api" json:"api"`
	Backend BackendConfig `toml:"backend" json:"backend"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
	Server  ServerConfig  `toml:"server" json:"server"`
	Storage StorageConfig `toml:"storage" json:"storage"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url" json:"base_url"`
}

// BackendConfig is the legacy fallback for the API base URL; api.base_url
// wins when both are set.
type BackendConfig struct {
	URL string `toml:"url" json:"url"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

type ServerConfig struct {
	Addr string `toml:"addr" json:"addr"`
}

type StorageConfig struct {
	Driver string `toml:"driver" json:"driver"`
	Path   string `toml:"path" json:"path"`
}

func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: defaultServerAddr},
		Storage: StorageConfig{Driver: "bolt"},
	}
}

func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return loadSettingsFromPath(path)
}

func loadSettingsFromPath(path string) (Settings, error) {
	cfg := DefaultSettings()
	if err := readTOML(path, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// ResolveBaseURL returns the remote notes API base: the primary api.base_url
// setting first, then the backend.url fallback. Environment variables take
// precedence over the file within each slot. Empty means not configured.
func (s Settings) ResolveBaseURL() string {
	candidates := []string{
		os.Getenv(envAPIBaseURL),
		s.API.BaseURL,
		os.Getenv(envBackendURL),
		s.Backend.URL,
	}
	for _, raw := range candidates {
		if value := strings.TrimRight(strings.TrimSpace(raw), "/"); value != "" {
			return value
		}
	}
	return ""
}

func (s Settings) LogLevel() string {
	if env := strings.TrimSpace(os.Getenv(envLogLevel)); env != "" {
		return env
	}
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (s Settings) ServerAddr() string {
	addr := strings.TrimSpace(s.Server.Addr)
	if addr == "" {
		return defaultServerAddr
	}
	addr = strings.TrimPrefix(addr, "http://")
	return strings.TrimRight(addr, "/")
}

func (s Settings) StorageDriver() string {
	driver := strings.ToLower(strings.TrimSpace(s.Storage.Driver))
	if driver == "" {
		return "bolt"
	}
	return driver
}

// StoragePath returns the configured store location, or the driver's default
// under the data dir when unset.
func (s Settings) StoragePath() (string, error) {
	if path := strings.TrimSpace(s.Storage.Path); path != "" {
		return path, nil
	}
	if s.StorageDriver() == "files" {
		return NotesDirPath()
	}
	return NotesDBPath()
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
