package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	session       *widget.Entry
	shortBreak    *widget.Entry
	longBreak     *widget.Entry
	breakCount    *widget.Entry
	debug         *widget.Check
	sound         *widget.Check
	notifications *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		session:       widget.NewEntry(),
		shortBreak:    widget.NewEntry(),
		longBreak:     widget.NewEntry(),
		breakCount:    widget.NewEntry(),
		debug:         widget.NewCheck("Debug mode (5 second phases)", nil),
		sound:         widget.NewCheck("Play alert sound", nil),
		notifications: widget.NewCheck("Show notifications", nil),
		launchAtLogin: widget.NewCheck("Launch at login", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Session length"), prefs.session, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break length"), prefs.shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break length"), prefs.longBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short breaks before long break"), prefs.breakCount),
		prefs.debug,
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		prefs.notifications,
		prefs.launchAtLogin,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 380))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.session.SetText(fmt.Sprintf("%d", settings.SessionMinutes))
	prefs.shortBreak.SetText(fmt.Sprintf("%d", settings.ShortBreakMinutes))
	prefs.longBreak.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	prefs.breakCount.SetText(fmt.Sprintf("%d", settings.BreaksBeforeLongBreak))
	prefs.debug.SetChecked(settings.Debug)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.session.Text); ok {
		settings.SessionMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortBreak.Text); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longBreak.Text); ok {
		settings.LongBreakMinutes = minutes
	}
	if count, ok := parsePositiveInt(prefs.breakCount.Text); ok {
		settings.BreaksBeforeLongBreak = count
	}

	settings.Debug = prefs.debug.Checked
	settings.SoundEnabled = prefs.sound.Checked
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
