package model

import (
	"errors"
	"testing"
)

func TestDefaultTimerConfigIsValid(t *testing.T) {
	if err := DefaultTimerConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TimerConfig)
		field  string
	}{
		{"session", func(c *TimerConfig) { c.SessionMinutes = 0 }, "session minutes"},
		{"short", func(c *TimerConfig) { c.ShortBreakMinutes = -1 }, "short break minutes"},
		{"long", func(c *TimerConfig) { c.LongBreakMinutes = 0 }, "long break minutes"},
		{"breaks", func(c *TimerConfig) { c.BreaksBeforeLongBreak = 0 }, "breaks before long break"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultTimerConfig()
			tc.mutate(&config)

			err := config.Validate()
			var configErr *ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if configErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, configErr.Field)
			}
		})
	}
}
