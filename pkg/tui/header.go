package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = `┬ ┬┬┌┬┐┌─┐┌─┐┌┬┐┌─┐
│││││ │││ ┬├┤  │ └─┐
└┴┘┴─┴┘└─┘└─┘ ┴ └─┘`

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2). // -2 for padding
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logoRendered))
	}

	// Title sits on the last logo row, logo on the right
	titleRendered := titleStyle.Render("\n\n" + title)
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(logoRendered)
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(headerContent)
}
