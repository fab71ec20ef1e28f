package src

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable holding the Anthropic API key.
// It is read from the environment only and never persisted to disk.
const EnvAPIKey = "ANTHROPIC_API_KEY"

// Settings holds the on-disk configuration for the engine and its clients.
type Settings struct {
	Version int    `json:"version"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
	DBPath  string `json:"db_path"`
	LogPath string `json:"log_path,omitempty"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		Version: 1,
		Model:   DefaultModel,
		BaseURL: defaultBaseURL,
		DBPath:  "baseball_stats.db",
	}
}

// DefaultSettingsPath returns the per-user settings location, falling back
// to the working directory when the user config dir cannot be resolved.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "statline-settings.json"
	}
	return filepath.Join(dir, "statline", "settings.json")
}

// LoadSettings reads settings from path, creating the file with defaults on
// first run. Fields missing from an existing file are filled from defaults so
// older settings files keep working after upgrades.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := DefaultSettings()
		if err := SaveSettings(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings JSON parse error: %w", err)
	}
	def := DefaultSettings()
	if s.Version == 0 {
		s.Version = def.Version
	}
	if s.Model == "" {
		s.Model = def.Model
	}
	if s.BaseURL == "" {
		s.BaseURL = def.BaseURL
	}
	if s.DBPath == "" {
		s.DBPath = def.DBPath
	}
	return s, nil
}

// SaveSettings writes settings atomically: marshal to a temp file in the same
// directory, then rename over the target.
func SaveSettings(path string, s Settings) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
