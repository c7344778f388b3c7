package phasetimer

import "time"

// Phase is the timer's current mode.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// IsBreak reports whether the phase is either break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// RunState replaces the running/paused boolean pair.
type RunState string

const (
	RunIdle    RunState = "idle"
	RunRunning RunState = "running"
	RunPaused  RunState = "paused"
)

// ColorTag is the display color contract for a phase.
type ColorTag string

const (
	ColorWork  ColorTag = "work"
	ColorBreak ColorTag = "break"
)

// Status texts shown for each phase.
const (
	StatusSession    = "Session in progress"
	StatusShortBreak = "Short Break"
	StatusLongBreak  = "Long Break"
)

// Notification messages sent when a phase ends.
const (
	MessageBreak = "Time for a break!"
	MessageWork  = "Back to work!"
)

// EventType defines the type of PhaseTimer event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventTick        EventType = "tick"
	EventReset       EventType = "reset"
	EventConfigError EventType = "config_error"
)

// Event represents a PhaseTimer update for observers.
type Event struct {
	Type              EventType
	Phase             Phase
	RunState          RunState
	Remaining         time.Duration
	SessionsCompleted int
	Message           string
	At                time.Time
}

// StatusText returns the status line shown for a phase.
func StatusText(phase Phase) string {
	switch phase {
	case PhaseShortBreak:
		return StatusShortBreak
	case PhaseLongBreak:
		return StatusLongBreak
	default:
		return StatusSession
	}
}

// ColorFor returns the display color contract for a phase.
func ColorFor(phase Phase) ColorTag {
	if phase.IsBreak() {
		return ColorBreak
	}
	return ColorWork
}
