package phasetimer

import "pomodoro/internal/core/model"

// ConfigSource supplies the durations for the next phase.
type ConfigSource interface {
	Config() model.TimerConfig
}

// Display receives rendering commands.
// Implementations must not call back into the PhaseTimer synchronously.
type Display interface {
	SetCountdownText(text string)
	SetDisplayColor(color ColorTag)
	SetStatusText(text string)
	SetMinutesUntilLongBreak(minutes int)
	SetSessionsCompleted(count int)
}

// Alerter plays the end-of-phase sound.
type Alerter interface {
	PlayAlert() error
}

// Notifier delivers a platform notification.
type Notifier interface {
	Notify(message string) error
}

// Subscription is an active clock registration.
type Subscription interface {
	Stop()
}

// Clock delivers tick calls until the returned subscription is stopped.
type Clock interface {
	Start(tick func()) Subscription
}

// Options wires collaborators into a PhaseTimer.
// Display, Alerter and Notifier may be nil.
type Options struct {
	Config   ConfigSource
	Clock    Clock
	Display  Display
	Alerter  Alerter
	Notifier Notifier
}

type nopDisplay struct{}

func (nopDisplay) SetCountdownText(string)      {}
func (nopDisplay) SetDisplayColor(ColorTag)     {}
func (nopDisplay) SetStatusText(string)         {}
func (nopDisplay) SetMinutesUntilLongBreak(int) {}
func (nopDisplay) SetSessionsCompleted(int)     {}

// StaticConfig is a ConfigSource that always returns the same config.
type StaticConfig model.TimerConfig

// Config implements ConfigSource.
func (config StaticConfig) Config() model.TimerConfig {
	return model.TimerConfig(config)
}
