package main

import (
	"testing"
	"time"

	"pomodoro/internal/core/phasetimer"
	"pomodoro/internal/ui/preferences"
	"pomodoro/resources"
)

func TestTrayStatus(t *testing.T) {
	cases := []struct {
		event phasetimer.Event
		want  string
	}{
		{phasetimer.Event{RunState: phasetimer.RunIdle, Phase: phasetimer.PhaseWork}, "Idle"},
		{phasetimer.Event{RunState: phasetimer.RunRunning, Phase: phasetimer.PhaseWork, Remaining: 65 * time.Second}, "Session in progress 01:05"},
		{phasetimer.Event{RunState: phasetimer.RunPaused, Phase: phasetimer.PhaseLongBreak, Remaining: 15 * time.Minute}, "Long Break 15:00"},
	}
	for _, tc := range cases {
		if got := trayStatus(tc.event); got != tc.want {
			t.Fatalf("trayStatus(%+v) = %q, want %q", tc.event, got, tc.want)
		}
	}
}

func TestTrayIcon(t *testing.T) {
	if got := trayIcon(phasetimer.Event{RunState: phasetimer.RunPaused, Phase: phasetimer.PhaseShortBreak}); got != resources.IconPaused {
		t.Fatalf("paused should win, got %s", got)
	}
	if got := trayIcon(phasetimer.Event{RunState: phasetimer.RunRunning, Phase: phasetimer.PhaseShortBreak}); got != resources.IconBreak {
		t.Fatalf("expected break icon, got %s", got)
	}
	if got := trayIcon(phasetimer.Event{RunState: phasetimer.RunRunning, Phase: phasetimer.PhaseWork}); got != resources.IconWork {
		t.Fatalf("expected work icon, got %s", got)
	}
}

func TestDebugFlagIsNotPersisted(t *testing.T) {
	configPath = t.TempDir() + "/settings.yaml"
	debugMode = true
	t.Cleanup(func() {
		configPath = ""
		debugMode = false
	})

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !newSource(settings).Config().Debug {
		t.Fatalf("debug flag should force debug durations")
	}
	if settings.Debug {
		t.Fatalf("debug flag leaked into the stored settings")
	}
	if err := saveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	debugMode = false
	reloaded, err := loadSettings()
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if reloaded.Debug {
		t.Fatalf("saved settings should not carry the debug flag")
	}
	if newSource(reloaded).Config().Debug {
		t.Fatalf("timer should use normal durations without the flag")
	}
}

func TestDebugSettingSurvivesWithoutFlag(t *testing.T) {
	configPath = t.TempDir() + "/settings.yaml"
	t.Cleanup(func() {
		configPath = ""
	})

	settings := preferences.DefaultSettings()
	settings.Debug = true
	if err := saveSettings(settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	reloaded, err := loadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !newSource(reloaded).Config().Debug {
		t.Fatalf("debug chosen in preferences should persist")
	}
}
