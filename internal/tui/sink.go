package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/phasetimer"
)

// Sink forwards timer output to a running Bubble Tea program. It implements
// phasetimer.Display and phasetimer.Notifier.
type Sink struct {
	send func(tea.Msg)
}

// NewSink creates a sink that drops output until a program is attached.
func NewSink() *Sink {
	return &Sink{send: func(tea.Msg) {}}
}

// Attach routes output to the program. Call it before the program runs and
// before the timer is started; Send blocks until the event loop reads.
func (sink *Sink) Attach(program *tea.Program) {
	sink.send = program.Send
}

// SetCountdownText implements phasetimer.Display.
func (sink *Sink) SetCountdownText(text string) {
	sink.send(countdownMsg(text))
}

// SetDisplayColor implements phasetimer.Display.
func (sink *Sink) SetDisplayColor(color phasetimer.ColorTag) {
	sink.send(colorMsg(color))
}

// SetStatusText implements phasetimer.Display.
func (sink *Sink) SetStatusText(text string) {
	sink.send(statusMsg(text))
}

// SetMinutesUntilLongBreak implements phasetimer.Display.
func (sink *Sink) SetMinutesUntilLongBreak(minutes int) {
	sink.send(minutesMsg(minutes))
}

// SetSessionsCompleted implements phasetimer.Display.
func (sink *Sink) SetSessionsCompleted(count int) {
	sink.send(sessionsMsg(count))
}

// Notify implements phasetimer.Notifier by showing the message in the view.
func (sink *Sink) Notify(message string) error {
	sink.send(noticeMsg(message))
	return nil
}
