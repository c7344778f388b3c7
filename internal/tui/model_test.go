package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/phasetimer"
)

type fakeController struct {
	starts  int
	toggles int
	resets  int
	err     error
	state   phasetimer.RunState
}

func (c *fakeController) Start() error {
	c.starts++
	if c.err != nil {
		return c.err
	}
	c.state = phasetimer.RunRunning
	return nil
}

func (c *fakeController) TogglePause() {
	c.toggles++
	if c.state == phasetimer.RunRunning {
		c.state = phasetimer.RunPaused
	}
}

func (c *fakeController) Reset() {
	c.resets++
	c.state = phasetimer.RunIdle
}

func (c *fakeController) Snapshot() phasetimer.Snapshot {
	state := c.state
	if state == "" {
		state = phasetimer.RunIdle
	}
	return phasetimer.Snapshot{
		Phase:            phasetimer.PhaseWork,
		RunState:         state,
		RemainingSeconds: 1500,
		Config:           model.DefaultTimerConfig(),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelShowsIdleState(t *testing.T) {
	m := NewModel(&fakeController{})
	view := m.View()

	for _, want := range []string{"25:00", phasetimer.StatusSession, "(stopped)", "Minutes until long break: 115", "Sessions completed: 0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestKeysDispatchCommands(t *testing.T) {
	controller := &fakeController{}
	m := NewModel(controller)

	_, cmd := m.Update(runes("s"))
	if cmd == nil {
		t.Fatalf("expected a command for start")
	}
	msg := cmd()
	if controller.starts != 1 {
		t.Fatalf("expected start to be called once, got %d", controller.starts)
	}
	m.Update(msg)
	if m.runState != phasetimer.RunRunning {
		t.Fatalf("expected running state, got %s", m.runState)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(cmd())
	if controller.toggles != 1 || m.runState != phasetimer.RunPaused {
		t.Fatalf("space should pause: toggles=%d state=%s", controller.toggles, m.runState)
	}
	if !strings.Contains(m.View(), "(paused)") {
		t.Fatalf("paused view should say so")
	}

	_, cmd = m.Update(runes("r"))
	m.Update(cmd())
	if controller.resets != 1 || m.runState != phasetimer.RunIdle {
		t.Fatalf("r should reset: resets=%d state=%s", controller.resets, m.runState)
	}
}

func TestStartErrorIsShown(t *testing.T) {
	controller := &fakeController{err: errors.New("invalid configuration: session minutes must be positive, got 0")}
	m := NewModel(controller)

	_, cmd := m.Update(runes("s"))
	m.Update(cmd())
	if !strings.Contains(m.View(), "session minutes must be positive") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(&fakeController{})
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg for %v", key)
		}
	}
}

func TestSinkMessagesUpdateView(t *testing.T) {
	m := NewModel(&fakeController{})
	sink := NewSink()
	sink.send = func(msg tea.Msg) {
		m.Update(msg)
	}

	sink.SetCountdownText("04:59")
	sink.SetDisplayColor(phasetimer.ColorBreak)
	sink.SetStatusText(phasetimer.StatusShortBreak)
	sink.SetMinutesUntilLongBreak(42)
	sink.SetSessionsCompleted(3)
	if err := sink.Notify(phasetimer.MessageBreak); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if m.color != phasetimer.ColorBreak {
		t.Fatalf("expected break color, got %s", m.color)
	}
	view := m.View()
	for _, want := range []string{"04:59", phasetimer.StatusShortBreak, "Minutes until long break: 42", "Sessions completed: 3", phasetimer.MessageBreak} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDetachedSinkDropsOutput(t *testing.T) {
	sink := NewSink()
	sink.SetCountdownText("00:00")
	if err := sink.Notify("ignored"); err != nil {
		t.Fatalf("notify: %v", err)
	}
}

func TestFooterFollowsRunState(t *testing.T) {
	cases := []struct {
		state phasetimer.RunState
		want  string
		skip  string
	}{
		{phasetimer.RunIdle, "s start", "pause"},
		{phasetimer.RunRunning, "p/space pause", "s start"},
		{phasetimer.RunPaused, "p/space resume", "s start"},
	}
	for _, tc := range cases {
		footer := footerText(tc.state)
		if !strings.Contains(footer, tc.want) {
			t.Fatalf("footer for %s = %q, want it to contain %q", tc.state, footer, tc.want)
		}
		if strings.Contains(footer, tc.skip) {
			t.Fatalf("footer for %s = %q, should not offer %q", tc.state, footer, tc.skip)
		}
	}
}

func TestPausedViewOffersResume(t *testing.T) {
	controller := &fakeController{state: phasetimer.RunPaused}
	m := NewModel(controller)

	if view := m.View(); !strings.Contains(view, "p/space resume") {
		t.Fatalf("paused view should offer resume, got:\n%s", view)
	}
}
