package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pomodoro/internal/ui/preferences"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	settings, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSaveThenLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	want := preferences.DefaultSettings()
	want.SessionMinutes = 50
	want.ShortBreakMinutes = 10
	want.LongBreakMinutes = 30
	want.BreaksBeforeLongBreak = 2
	want.Debug = true
	want.SoundEnabled = false
	want.LaunchAtLogin = true

	if err := SaveSettingsFile(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadSettingsFileIgnoresNonPositive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "session_minutes: 0\nshort_break_minutes: -3\nlong_break_minutes: 20\nbreaks_before_long_break: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.SessionMinutes != 25 || settings.ShortBreakMinutes != 5 {
		t.Fatalf("non-positive values should fall back to defaults: %+v", settings)
	}
	if settings.LongBreakMinutes != 20 || settings.BreaksBeforeLongBreak != 3 {
		t.Fatalf("valid values should be applied: %+v", settings)
	}
	if !settings.SoundEnabled || !settings.NotificationsEnabled {
		t.Fatalf("missing toggles should keep defaults: %+v", settings)
	}
}

func TestLoadSettingsFileRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("session_minutes: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettingsFile(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults on error, got %+v", settings)
	}
}
