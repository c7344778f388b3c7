package main

import (
	"fmt"
	"log"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/phasetimer"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/display"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

func runDesktop(settings preferences.Settings) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("app.pomodoro.timer")
	fyneApp.SetIcon(resources.MustIcon(resources.IconWork))

	source := newSource(settings)
	platformService := platform.NewService()

	var (
		timer       *phasetimer.PhaseTimer
		mainWindow  *display.Window
		prefsWindow *preferences.Window
		trayManager *tray.Manager
	)

	start := func() {
		if err := timer.Start(); err != nil {
			log.Printf("start timer: %v", err)
			dialog.ShowError(err, mainWindow.Window())
		}
	}

	mainWindow = display.New(fyneApp, phasetimer.FormatTime(settings.TimerConfig().SessionMinutes*60), display.Callbacks{
		OnStart:       start,
		OnTogglePause: func() { timer.TogglePause() },
		OnReset:       func() { timer.Reset() },
		OnPreferences: func() { prefsWindow.Show() },
	})

	timer = phasetimer.New(phasetimer.Options{
		Config:   source,
		Clock:    phasetimer.NewTickerClock(0),
		Display:  mainWindow,
		Alerter:  alert.NewTone(source.SoundEnabled),
		Notifier: alert.NewDesktopNotifier(fyneApp, source.NotificationsEnabled),
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		previous := source.Settings()
		source.Update(updated)
		if err := saveSettings(updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		if previous.LaunchAtLogin != updated.LaunchAtLogin {
			if err := platform.SyncAutostart(platformService, appName, updated.LaunchAtLogin); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
	})

	quit := func() {
		timer.Close()
		fyneApp.Quit()
	}

	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimer:   mainWindow.Show,
			OnStart:       start,
			OnTogglePause: func() { timer.TogglePause() },
			OnReset:       func() { timer.Reset() },
			OnPreferences: func() { prefsWindow.Show() },
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconWork))
		mainWindow.Window().SetCloseIntercept(func() {
			mainWindow.Window().Hide()
		})
	} else {
		log.Printf("system tray unsupported on this platform")
		mainWindow.Window().SetCloseIntercept(quit)
	}

	events := timer.Subscribe(5)
	go func() {
		for event := range events {
			handleEvent(event, mainWindow, desktopApp, trayManager)
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		timer.Reset()
	})

	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func handleEvent(event phasetimer.Event, mainWindow *display.Window, desktopApp desktop.App, trayManager *tray.Manager) {
	paused := event.RunState == phasetimer.RunPaused
	if event.Type != phasetimer.EventTick {
		mainWindow.SetRunState(event.RunState)
	}
	if event.Type == phasetimer.EventConfigError {
		log.Printf("configuration rejected: %s", event.Message)
	}
	if trayManager == nil {
		return
	}

	status := trayStatus(event)
	icon := trayIcon(event)
	fyne.Do(func() {
		trayManager.SetStatus(status)
		if event.Type != phasetimer.EventTick {
			trayManager.SetRunning(event.RunState != phasetimer.RunIdle)
			trayManager.SetPaused(paused)
			desktopApp.SetSystemTrayIcon(resources.MustIcon(icon))
		}
	})
}

func trayStatus(event phasetimer.Event) string {
	if event.RunState == phasetimer.RunIdle {
		return "Idle"
	}
	seconds := int(event.Remaining.Seconds())
	return fmt.Sprintf("%s %s", phasetimer.StatusText(event.Phase), phasetimer.FormatTime(seconds))
}

func trayIcon(event phasetimer.Event) string {
	switch {
	case event.RunState == phasetimer.RunPaused:
		return resources.IconPaused
	case event.Phase.IsBreak():
		return resources.IconBreak
	default:
		return resources.IconWork
	}
}
