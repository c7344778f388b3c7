package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SessionMinutes        int   `yaml:"session_minutes"`
	ShortBreakMinutes     int   `yaml:"short_break_minutes"`
	LongBreakMinutes      int   `yaml:"long_break_minutes"`
	BreaksBeforeLongBreak int   `yaml:"breaks_before_long_break"`
	Debug                 bool  `yaml:"debug"`
	SoundEnabled          *bool `yaml:"sound_enabled"`
	NotificationsEnabled  *bool `yaml:"notifications_enabled"`
	LaunchAtLogin         bool  `yaml:"launch_at_login"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from the given YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the default YAML location.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to the given YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sound := settings.SoundEnabled
	notifications := settings.NotificationsEnabled
	fileData := yamlSettings{
		SessionMinutes:        settings.SessionMinutes,
		ShortBreakMinutes:     settings.ShortBreakMinutes,
		LongBreakMinutes:      settings.LongBreakMinutes,
		BreaksBeforeLongBreak: settings.BreaksBeforeLongBreak,
		Debug:                 settings.Debug,
		SoundEnabled:          &sound,
		NotificationsEnabled:  &notifications,
		LaunchAtLogin:         settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file path inside the user config dir.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Non-positive values in the file are ignored so the timer always starts
// from a valid configuration.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SessionMinutes > 0 {
		settings.SessionMinutes = fileData.SessionMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.BreaksBeforeLongBreak > 0 {
		settings.BreaksBeforeLongBreak = fileData.BreaksBeforeLongBreak
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}

	settings.Debug = fileData.Debug
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
