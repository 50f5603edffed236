package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles inline yes/no prompts
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowInline activates the confirmation with the given message
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}

	return nil
}

// View renders the prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	return fmt.Sprintf("%s %s", m.message, formatConfirmOptions(m.destructive))
}

func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true)
	if destructive {
		yes, no = no, yes
	}
	return fmt.Sprintf("[%s/%s]", yes.Render("y"), no.Render("n"))
}
