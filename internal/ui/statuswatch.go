package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusFunc fetches the current transaction status text.
type StatusFunc func() (string, error)

type frameMsg struct{}

type pollMsg struct {
	status string
	err    error
}

// StatusModel is the Bubble Tea model that polls a transaction's status
// until it reaches a terminal state.
type StatusModel struct {
	Hash     string
	Fetch    StatusFunc
	Interval time.Duration

	status   string
	err      error
	frame    int
	done     bool
	quitting bool
}

// Done reports whether the transaction reached a terminal state.
func (m StatusModel) Done() bool { return m.done }

// Status returns the last observed status text.
func (m StatusModel) Status() string { return m.status }

// Err returns the last poll error, if any.
func (m StatusModel) Err() error { return m.err }

func (m StatusModel) Init() tea.Cmd {
	return tea.Batch(frameTick(), m.poll())
}

func frameTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m StatusModel) poll() tea.Cmd {
	return func() tea.Msg {
		status, err := m.Fetch()
		return pollMsg{status: status, err: err}
	}
}

func (m StatusModel) schedulePoll() tea.Cmd {
	return tea.Tick(m.Interval, func(time.Time) tea.Msg {
		return m.poll()()
	})
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case frameMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, frameTick()

	case pollMsg:
		m.status, m.err = msg.status, msg.err
		if isTerminalStatus(m.status) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.schedulePoll()
	}
	return m, nil
}

func (m StatusModel) View() string {
	if m.quitting && !m.done {
		return Warn("stopped watching " + m.Hash) + "\n"
	}
	if m.done {
		return renderFinalStatus(m.Hash, m.status) + "\n"
	}

	frame := StyleAccent.Render(spinnerFrames[m.frame])
	current := m.status
	if current == "" {
		current = "fetching status"
	}
	if m.err != nil {
		current = "retrying: " + m.err.Error()
	}
	return fmt.Sprintf("%s  %s %s %s\n", frame, Addr(m.Hash), Meta("·"), current)
}

func isTerminalStatus(status string) bool {
	return strings.Contains(status, "ACCEPTED_ON_L1") ||
		strings.Contains(status, "ACCEPTED_ON_L2") ||
		strings.Contains(status, "REJECTED")
}

func renderFinalStatus(hash, status string) string {
	if strings.Contains(status, "REJECTED") {
		return Err(hash + " " + status)
	}
	return Success(hash + " " + status)
}
