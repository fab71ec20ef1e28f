package src

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", s, DefaultSettings())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file was not created: %v", err)
	}
}

func TestLoadSettingsFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	partial := `{"db_path": "/data/stats.db"}`
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.DBPath != "/data/stats.db" {
		t.Errorf("DBPath = %q, want /data/stats.db", s.DBPath)
	}
	if s.Model != DefaultModel {
		t.Errorf("Model = %q, want default %q", s.Model, DefaultModel)
	}
	if s.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", s.BaseURL, defaultBaseURL)
	}
	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
}

func TestLoadSettingsRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := Settings{
		Version: 1,
		Model:   "claude-test-model",
		BaseURL: "http://localhost:9999",
		DBPath:  "custom.db",
		LogPath: "statline.log",
	}

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}
