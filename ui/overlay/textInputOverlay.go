package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a popup with a single text field, used for search and
// for entering credentials on the settings screen.
type TextInputOverlay struct {
	// OnSubmit is called with the entered value when the user presses enter.
	OnSubmit func(value string)
	// OnCancel is called when the user dismisses the overlay.
	OnCancel func()

	title string
	input textinput.Model
	width int
}

func NewTextInputOverlay(title, placeholder, value string) *TextInputOverlay {
	input := textinput.New()
	input.Placeholder = placeholder
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()
	return &TextInputOverlay{
		title: title,
		input: input,
		width: 50,
	}
}

func (o *TextInputOverlay) SetWidth(width int) {
	o.width = width
	o.input.Width = width - 8
}

// Value returns the current contents of the text field.
func (o *TextInputOverlay) Value() string {
	return o.input.Value()
}

// HandleKeyPress processes a key press and returns true if the overlay
// should be closed.
func (o *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter":
		if o.OnSubmit != nil {
			o.OnSubmit(o.input.Value())
		}
		return true
	case "esc":
		if o.OnCancel != nil {
			o.OnCancel()
		}
		return true
	}
	o.input, _ = o.input.Update(msg)
	return false
}

// Render renders the text input overlay.
func (o *TextInputOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(o.title),
		"",
		o.input.View(),
		"",
		dimStyle.Render("↵ submit • esc cancel"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(o.width).
		Render(content)
}
