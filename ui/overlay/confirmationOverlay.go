package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay is a yes/no modal.
type ConfirmationOverlay struct {
	// OnConfirm is called when the user presses y.
	OnConfirm func()
	// OnCancel is called when the user presses n or esc.
	OnCancel func()

	message string
	width   int
}

func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		message: message,
		width:   50,
	}
}

func (o *ConfirmationOverlay) SetWidth(width int) {
	o.width = width
}

// HandleKeyPress processes a key press and returns true if the overlay
// should be closed.
func (o *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y", "enter":
		if o.OnConfirm != nil {
			o.OnConfirm()
		}
		return true
	case "n", "N", "esc", "q":
		if o.OnCancel != nil {
			o.OnCancel()
		}
		return true
	}
	return false
}

// Render renders the confirmation overlay.
func (o *ConfirmationOverlay) Render(opts ...WhitespaceOption) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		o.message,
		"",
		dimStyle.Render("y confirm • n cancel"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("3")).
		Padding(1, 2).
		Width(o.width).
		Render(content)
}
