package model

import "fmt"

// TimerConfig contains the durations the PhaseTimer state machine reads at
// the start of every phase.
type TimerConfig struct {
	SessionMinutes        int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	BreaksBeforeLongBreak int

	// Debug replaces every phase duration with a few seconds.
	Debug bool
}

// DefaultTimerConfig returns the classic 25/5/15 schedule with a long break
// after four sessions.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		SessionMinutes:        25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		BreaksBeforeLongBreak: 4,
	}
}

// ConfigurationError reports a non-positive duration or break count.
type ConfigurationError struct {
	Field string
	Value int
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s must be positive, got %d", err.Field, err.Value)
}

// Validate returns a *ConfigurationError for the first non-positive value.
func (config TimerConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"session minutes", config.SessionMinutes},
		{"short break minutes", config.ShortBreakMinutes},
		{"long break minutes", config.LongBreakMinutes},
		{"breaks before long break", config.BreaksBeforeLongBreak},
	}
	for _, field := range fields {
		if field.value <= 0 {
			return &ConfigurationError{Field: field.name, Value: field.value}
		}
	}
	return nil
}
