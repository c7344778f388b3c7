package display

import (
	"fmt"
	"image/color"
	"strconv"

	"pomodoro/internal/core/phasetimer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	workColor  = color.NRGBA{R: 220, G: 53, B: 47, A: 255}
	breakColor = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
)

// Callbacks defines the command surface handlers.
type Callbacks struct {
	OnStart       func()
	OnTogglePause func()
	OnReset       func()
	OnPreferences func()
}

// Window is the main timer window. It implements phasetimer.Display; every
// update is marshalled onto the fyne goroutine.
type Window struct {
	window         fyne.Window
	countdown      *canvas.Text
	status         *widget.Label
	untilLongBreak *widget.Label
	sessions       *widget.Label
	startButton    *widget.Button
	pauseButton    *widget.Button
	callbacks      Callbacks
}

// New creates the timer window.
func New(app fyne.App, initialCountdown string, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	countdown := canvas.NewText(initialCountdown, workColor)
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	countdown.TextSize = 64

	display := &Window{
		window:         window,
		countdown:      countdown,
		status:         widget.NewLabelWithStyle(phasetimer.StatusSession, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		untilLongBreak: widget.NewLabel("0"),
		sessions:       widget.NewLabel("0"),
		callbacks:      callbacks,
	}

	display.startButton = widget.NewButton("Start", func() {
		if display.callbacks.OnStart != nil {
			display.callbacks.OnStart()
		}
	})
	display.pauseButton = widget.NewButton("Pause", func() {
		if display.callbacks.OnTogglePause != nil {
			display.callbacks.OnTogglePause()
		}
	})
	resetButton := widget.NewButton("Reset", func() {
		if display.callbacks.OnReset != nil {
			display.callbacks.OnReset()
		}
	})
	settingsButton := widget.NewButton("Settings", func() {
		if display.callbacks.OnPreferences != nil {
			display.callbacks.OnPreferences()
		}
	})

	stats := container.NewGridWithColumns(2,
		widget.NewLabel("Minutes until long break"), display.untilLongBreak,
		widget.NewLabel("Sessions completed"), display.sessions,
	)
	buttons := container.NewHBox(layout.NewSpacer(), display.startButton, display.pauseButton, resetButton, layout.NewSpacer())

	window.SetContent(container.NewVBox(
		container.NewCenter(countdown),
		display.status,
		buttons,
		widget.NewSeparator(),
		stats,
		container.NewHBox(layout.NewSpacer(), settingsButton),
	))
	window.Resize(fyne.NewSize(360, 320))
	display.pauseButton.Disable()

	return display
}

// Window returns the underlying fyne window.
func (display *Window) Window() fyne.Window {
	return display.window
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// SetRunState enables the buttons that apply to the run state. Start only
// works from idle; a paused countdown is resumed with the pause button.
func (display *Window) SetRunState(state phasetimer.RunState) {
	startEnabled, pauseEnabled, pauseLabel := buttonStates(state)
	fyne.Do(func() {
		setEnabled(display.startButton, startEnabled)
		setEnabled(display.pauseButton, pauseEnabled)
		display.pauseButton.SetText(pauseLabel)
	})
}

func buttonStates(state phasetimer.RunState) (startEnabled, pauseEnabled bool, pauseLabel string) {
	switch state {
	case phasetimer.RunRunning:
		return false, true, "Pause"
	case phasetimer.RunPaused:
		return false, true, "Resume"
	default:
		return true, false, "Pause"
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}

// SetCountdownText implements phasetimer.Display.
func (display *Window) SetCountdownText(text string) {
	fyne.Do(func() {
		display.countdown.Text = text
		display.countdown.Refresh()
	})
}

// SetDisplayColor implements phasetimer.Display.
func (display *Window) SetDisplayColor(tag phasetimer.ColorTag) {
	fill := colorForTag(tag)
	fyne.Do(func() {
		display.countdown.Color = fill
		display.countdown.Refresh()
	})
}

// SetStatusText implements phasetimer.Display.
func (display *Window) SetStatusText(text string) {
	fyne.Do(func() {
		display.status.SetText(text)
	})
}

// SetMinutesUntilLongBreak implements phasetimer.Display.
func (display *Window) SetMinutesUntilLongBreak(minutes int) {
	fyne.Do(func() {
		display.untilLongBreak.SetText(strconv.Itoa(minutes))
	})
}

// SetSessionsCompleted implements phasetimer.Display.
func (display *Window) SetSessionsCompleted(count int) {
	fyne.Do(func() {
		display.sessions.SetText(fmt.Sprintf("%d", count))
	})
}

func colorForTag(tag phasetimer.ColorTag) color.Color {
	if tag == phasetimer.ColorBreak {
		return breakColor
	}
	return workColor
}
