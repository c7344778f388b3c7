package phasetimer

import "fmt"

// DebugPhaseSeconds is the duration of every phase in debug mode.
const DebugPhaseSeconds = 5

// FormatTime converts a number of seconds into a mm:ss string.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// MinutesUntilLongBreak estimates the minutes left before the next long break
// while a work session is in progress. Remaining work/short-break pairs count
// in full, the current session counts by its remaining whole minutes.
func MinutesUntilLongBreak(sessionMinutes, shortBreakMinutes, breaksBeforeLongBreak, shortBreaksDone, remainingSeconds int) int {
	breaksRemaining := breaksBeforeLongBreak - shortBreaksDone
	minutes := sessionMinutes*(breaksRemaining-1) +
		shortBreakMinutes*(breaksRemaining-1) +
		ceilDiv(remainingSeconds, 60)
	if minutes < 0 {
		return 0
	}
	return minutes
}

func ceilDiv(value, divisor int) int {
	if value <= 0 {
		return 0
	}
	return (value + divisor - 1) / divisor
}
