package overlay

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay is a dismissable popup showing static text, scrollable when the
// content does not fit. Used for the help screen and hint popups.
type TextOverlay struct {
	// Whether the overlay has been dismissed
	Dismissed bool
	// Callback function to be called when the overlay is dismissed
	OnDismiss func()

	content  string
	viewport viewport.Model

	width  int
	height int

	needsScrolling bool
}

// NewTextOverlay creates a new text overlay with the given content.
func NewTextOverlay(content string) *TextOverlay {
	t := &TextOverlay{
		content:  content,
		viewport: viewport.New(0, 0),
	}
	t.viewport.SetContent(content)
	return t
}

// HandleKeyPress processes a key press and returns true if the overlay
// should be closed.
func (t *TextOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	if t.needsScrolling {
		switch msg.String() {
		case "up", "k":
			t.viewport.LineUp(1)
			return false
		case "down", "j":
			t.viewport.LineDown(1)
			return false
		case "d", "pgdown":
			t.viewport.HalfViewDown()
			return false
		case "u", "pgup":
			t.viewport.HalfViewUp()
			return false
		case "g", "home":
			t.viewport.GotoTop()
			return false
		case "G", "end":
			t.viewport.GotoBottom()
			return false
		}
	}

	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the text overlay.
func (t *TextOverlay) Render(opts ...WhitespaceOption) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	var content string
	if t.needsScrolling {
		content = t.viewport.View()
		if t.viewport.TotalLineCount() > t.viewport.Height {
			scrollInfo := lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Render("↑/↓ to scroll • press any other key to close")
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", scrollInfo)
		}
	} else {
		content = t.content
	}

	if t.width > 0 {
		style = style.Width(t.width)
	}

	return style.Render(content)
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
	t.updateViewport()
}

// SetSize updates the dimensions of the overlay.
func (t *TextOverlay) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.updateViewport()
}

func (t *TextOverlay) updateViewport() {
	if t.height == 0 || t.width == 0 {
		return
	}

	// Border, padding and the scroll hint line take 6 rows/columns.
	viewportHeight := t.height - 6
	viewportWidth := t.width - 6

	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	t.viewport.Width = viewportWidth
	t.viewport.Height = viewportHeight

	t.needsScrolling = lipgloss.Height(t.content) > viewportHeight
}
