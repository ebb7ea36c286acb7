package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	SuccessMessage = "Congratulations! You completed the task!"
	FailureMessage = "You hit an obstacle! Try again."
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red for failures
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green for success
	modalFrame = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2)
)

type notice struct {
	success bool
	text    string
}

// Modal is a Notifier that keeps every message on screen until the player
// acknowledges it. Messages are shown in the order they were raised.
type Modal struct {
	pending []notice
}

func (m *Modal) NotifySuccess() {
	m.pending = append(m.pending, notice{success: true, text: SuccessMessage})
}

func (m *Modal) NotifyFailure() {
	m.pending = append(m.pending, notice{success: false, text: FailureMessage})
}

// Open reports whether a message is waiting for acknowledgement.
func (m *Modal) Open() bool {
	return len(m.pending) > 0
}

// Message returns the message on screen, if any.
func (m *Modal) Message() string {
	if !m.Open() {
		return ""
	}
	return m.pending[0].text
}

// Acknowledge dismisses the message on screen.
func (m *Modal) Acknowledge() {
	if m.Open() {
		m.pending = m.pending[1:]
	}
}

func (m *Modal) View() string {
	if !m.Open() {
		return ""
	}
	n := m.pending[0]
	text := redStyle.Render(n.text)
	border := lipgloss.Color("9")
	if n.success {
		text = greenStyle.Render(n.text)
		border = lipgloss.Color("10")
	}
	return modalFrame.BorderForeground(border).Render(text + "\n\n" + "press enter to continue")
}
