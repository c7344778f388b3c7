package alert

import "fyne.io/fyne/v2"

// NotificationTitle is the title of every desktop notification.
const NotificationTitle = "Pomodoro Timer"

// NotificationSender is satisfied by fyne.App.
type NotificationSender interface {
	SendNotification(*fyne.Notification)
}

// DesktopNotifier sends phase notifications through the fyne app.
type DesktopNotifier struct {
	sender  NotificationSender
	enabled func() bool
}

// NewDesktopNotifier creates a notifier gated by the enabled preference.
func NewDesktopNotifier(sender NotificationSender, enabled func() bool) *DesktopNotifier {
	return &DesktopNotifier{sender: sender, enabled: enabled}
}

// Notify implements phasetimer.Notifier.
func (notifier *DesktopNotifier) Notify(message string) error {
	if notifier.enabled != nil && !notifier.enabled() {
		return nil
	}
	notifier.sender.SendNotification(fyne.NewNotification(NotificationTitle, message))
	return nil
}
