package platform

import (
	"errors"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Pomodoro Timer": "pomodoro-timer",
		"  Tomato ":      "tomato",
		"":               "pomodoro",
	}
	for input, want := range cases {
		if got := slug(input); got != want {
			t.Fatalf("slug(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGuardAddressIsStable(t *testing.T) {
	first := guardAddress("Pomodoro Timer")
	if first != guardAddress("Pomodoro Timer") {
		t.Fatalf("guard address should be deterministic")
	}
	if first == guardAddress("Other App") {
		t.Fatalf("different apps should not share a guard port")
	}
}

func TestSingleInstance(t *testing.T) {
	appName := "pomodoro-single-instance-test"
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("guard port unavailable: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	if _, err := AcquireSingleInstance(appName); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

type recordingService struct {
	enabled  []string
	disabled []string
}

func (service *recordingService) GetConfigDir() (string, error) {
	return "", nil
}

func (service *recordingService) EnableAutostart(appName, execPath string) error {
	if execPath == "" {
		return errors.New("empty exec path")
	}
	service.enabled = append(service.enabled, appName)
	return nil
}

func (service *recordingService) DisableAutostart(appName string) error {
	service.disabled = append(service.disabled, appName)
	return nil
}

func TestSyncAutostart(t *testing.T) {
	service := &recordingService{}

	if err := SyncAutostart(service, "Pomodoro", true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := SyncAutostart(service, "Pomodoro", false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if len(service.enabled) != 1 || len(service.disabled) != 1 {
		t.Fatalf("unexpected calls: %+v", service)
	}
}
