package display

import (
	"testing"

	"pomodoro/internal/core/phasetimer"
)

func TestColorForTag(t *testing.T) {
	if got := colorForTag(phasetimer.ColorWork); got != workColor {
		t.Fatalf("expected work color, got %v", got)
	}
	if got := colorForTag(phasetimer.ColorBreak); got != breakColor {
		t.Fatalf("expected break color, got %v", got)
	}
	if got := colorForTag(""); got != workColor {
		t.Fatalf("unknown tags should fall back to the work color, got %v", got)
	}
}

func TestButtonStates(t *testing.T) {
	cases := []struct {
		state        phasetimer.RunState
		startEnabled bool
		pauseEnabled bool
		pauseLabel   string
	}{
		{phasetimer.RunIdle, true, false, "Pause"},
		{phasetimer.RunRunning, false, true, "Pause"},
		{phasetimer.RunPaused, false, true, "Resume"},
	}
	for _, tc := range cases {
		start, pause, label := buttonStates(tc.state)
		if start != tc.startEnabled || pause != tc.pauseEnabled || label != tc.pauseLabel {
			t.Fatalf("buttonStates(%s) = %v, %v, %q; want %v, %v, %q",
				tc.state, start, pause, label, tc.startEnabled, tc.pauseEnabled, tc.pauseLabel)
		}
	}
}
