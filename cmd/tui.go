package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/phasetimer"
	"pomodoro/internal/tui"
	"pomodoro/internal/ui/preferences"
)

func runTerminal(settings preferences.Settings) error {
	source := newSource(settings)
	sink := tui.NewSink()

	timer := phasetimer.New(phasetimer.Options{
		Config:   source,
		Clock:    phasetimer.NewTickerClock(0),
		Display:  sink,
		Alerter:  alert.NewTone(source.SoundEnabled),
		Notifier: sink,
	})
	defer timer.Close()

	program := tea.NewProgram(tui.NewModel(timer), tea.WithAltScreen())
	sink.Attach(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
