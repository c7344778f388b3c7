package preferences

import (
	"sync"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	SessionMinutes        int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	BreaksBeforeLongBreak int
	Debug                 bool

	SoundEnabled         bool
	NotificationsEnabled bool
	LaunchAtLogin        bool
}

// DefaultSettings returns default settings for the Pomodoro timer.
func DefaultSettings() Settings {
	defaults := model.DefaultTimerConfig()
	return Settings{
		SessionMinutes:        defaults.SessionMinutes,
		ShortBreakMinutes:     defaults.ShortBreakMinutes,
		LongBreakMinutes:      defaults.LongBreakMinutes,
		BreaksBeforeLongBreak: defaults.BreaksBeforeLongBreak,
		SoundEnabled:          true,
		NotificationsEnabled:  true,
	}
}

// TimerConfig converts settings to the timer configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		SessionMinutes:        settings.SessionMinutes,
		ShortBreakMinutes:     settings.ShortBreakMinutes,
		LongBreakMinutes:      settings.LongBreakMinutes,
		BreaksBeforeLongBreak: settings.BreaksBeforeLongBreak,
		Debug:                 settings.Debug,
	}
}

// Source holds the live settings. The timer reads it at every phase start,
// so edits apply from the next phase on.
type Source struct {
	mu         sync.RWMutex
	settings   Settings
	forceDebug bool
}

// NewSource creates a source with initial settings.
func NewSource(settings Settings) *Source {
	return &Source{settings: settings}
}

// Config implements phasetimer.ConfigSource.
func (source *Source) Config() model.TimerConfig {
	source.mu.RLock()
	defer source.mu.RUnlock()
	config := source.settings.TimerConfig()
	if source.forceDebug {
		config.Debug = true
	}
	return config
}

// ForceDebug makes the timer use debug durations regardless of the stored
// settings. The override is never part of Settings, so it is not saved.
func (source *Source) ForceDebug(enabled bool) {
	source.mu.Lock()
	source.forceDebug = enabled
	source.mu.Unlock()
}

// Settings returns a copy of the current settings.
func (source *Source) Settings() Settings {
	source.mu.RLock()
	defer source.mu.RUnlock()
	return source.settings
}

// Update replaces the current settings.
func (source *Source) Update(settings Settings) {
	source.mu.Lock()
	source.settings = settings
	source.mu.Unlock()
}

// SoundEnabled reports whether the alert tone should play.
func (source *Source) SoundEnabled() bool {
	return source.Settings().SoundEnabled
}

// NotificationsEnabled reports whether desktop notifications may be sent.
func (source *Source) NotificationsEnabled() bool {
	return source.Settings().NotificationsEnabled
}
