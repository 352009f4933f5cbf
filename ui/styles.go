package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	highlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(highlightColor)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	easyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	hardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	solvedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	attemptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	paidStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// DifficultyStyle returns the style used for a difficulty label.
func DifficultyStyle(difficulty string) lipgloss.Style {
	switch difficulty {
	case "Easy":
		return easyStyle
	case "Medium":
		return mediumStyle
	case "Hard":
		return hardStyle
	}
	return dimStyle
}

// statusGlyph renders the per-problem progress marker shown in the list.
func statusGlyph(status string) string {
	switch status {
	case "ac":
		return solvedStyle.Render("✓")
	case "notac":
		return attemptedStyle.Render("~")
	}
	return " "
}
