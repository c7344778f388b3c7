// Package tui provides the Bubble Tea front-end for the phase timer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/phasetimer"
)

// Controller is the command surface the model drives.
type Controller interface {
	Start() error
	TogglePause()
	Reset()
	Snapshot() phasetimer.Snapshot
}

type (
	countdownMsg string
	colorMsg     phasetimer.ColorTag
	statusMsg    string
	minutesMsg   int
	sessionsMsg  int
	noticeMsg    string
	stateMsg     phasetimer.Snapshot
	errMsg       struct{ err error }
)

var (
	workStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0443E"))
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2EA043"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle    = lipgloss.NewStyle().Padding(1, 4)
)

// Model implements the Bubble Tea timer UI.
type Model struct {
	timer Controller

	countdown string
	color     phasetimer.ColorTag
	status    string
	minutes   int
	sessions  int
	runState  phasetimer.RunState
	notice    string
	err       error
}

// NewModel builds a model showing the timer's current state.
func NewModel(timer Controller) *Model {
	snap := timer.Snapshot()
	config := snap.Config
	return &Model{
		timer:     timer,
		countdown: phasetimer.FormatTime(snap.RemainingSeconds),
		color:     phasetimer.ColorWork,
		status:    phasetimer.StatusSession,
		minutes: phasetimer.MinutesUntilLongBreak(
			config.SessionMinutes,
			config.ShortBreakMinutes,
			config.BreaksBeforeLongBreak,
			snap.ShortBreaksDone,
			snap.RemainingSeconds,
		),
		sessions: snap.SessionsCompleted,
		runState: snap.RunState,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case countdownMsg:
		m.countdown = string(msg)
	case colorMsg:
		m.color = phasetimer.ColorTag(msg)
	case statusMsg:
		m.status = string(msg)
	case minutesMsg:
		m.minutes = int(msg)
	case sessionsMsg:
		m.sessions = int(msg)
	case noticeMsg:
		m.notice = string(msg)
	case stateMsg:
		m.runState = msg.RunState
		m.err = nil
	case errMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeySpace:
		return m.command(func() error {
			m.timer.TogglePause()
			return nil
		})
	case tea.KeyRunes:
		switch strings.ToLower(string(msg.Runes)) {
		case "q":
			return tea.Quit
		case "s":
			return m.command(m.timer.Start)
		case "p":
			return m.command(func() error {
				m.timer.TogglePause()
				return nil
			})
		case "r":
			return m.command(func() error {
				m.timer.Reset()
				return nil
			})
		}
	}
	return nil
}

// command runs a timer action off the event loop, since the timer reports
// back to this program while it holds its lock.
func (m *Model) command(action func() error) tea.Cmd {
	timer := m.timer
	return func() tea.Msg {
		if err := action(); err != nil {
			return errMsg{err: err}
		}
		return stateMsg(timer.Snapshot())
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	countdownStyle := workStyle
	if m.color == phasetimer.ColorBreak {
		countdownStyle = breakStyle
	}

	status := m.status
	switch m.runState {
	case phasetimer.RunPaused:
		status += " (paused)"
	case phasetimer.RunIdle:
		status += " (stopped)"
	}

	lines := []string{
		countdownStyle.Render(m.countdown),
		statusStyle.Render(status),
		"",
		statsStyle.Render(fmt.Sprintf("Minutes until long break: %d", m.minutes)),
		statsStyle.Render(fmt.Sprintf("Sessions completed: %d", m.sessions)),
	}
	if m.notice != "" {
		lines = append(lines, "", noticeStyle.Render(m.notice))
	}
	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}
	lines = append(lines, "", footerStyle.Render(footerText(m.runState)))

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// footerText lists the keys that act in the given run state. Start only
// applies from idle; a paused countdown resumes with p or space.
func footerText(state phasetimer.RunState) string {
	switch state {
	case phasetimer.RunRunning:
		return "p/space pause · r reset · q quit"
	case phasetimer.RunPaused:
		return "p/space resume · r reset · q quit"
	default:
		return "s start · r reset · q quit"
	}
}
