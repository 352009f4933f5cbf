package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leetterm/api"
)

// ListSelectorOverlay is a popup for picking one of the user's favorites
// lists, e.g. when adding a problem to a list.
type ListSelectorOverlay struct {
	// OnSelect is called with the chosen list when the user confirms.
	OnSelect func(list api.FavoriteList)
	// OnCancel is called when the user dismisses the overlay.
	OnCancel func()

	title  string
	lists  []api.FavoriteList
	cursor int
	width  int
}

func NewListSelectorOverlay(title string, lists []api.FavoriteList) *ListSelectorOverlay {
	return &ListSelectorOverlay{
		title: title,
		lists: lists,
		width: 50,
	}
}

func (o *ListSelectorOverlay) SetWidth(width int) {
	o.width = width
}

// Selected returns the list under the cursor.
func (o *ListSelectorOverlay) Selected() (api.FavoriteList, bool) {
	if o.cursor < 0 || o.cursor >= len(o.lists) {
		return api.FavoriteList{}, false
	}
	return o.lists[o.cursor], true
}

// HandleKeyPress processes a key press and returns true if the overlay
// should be closed.
func (o *ListSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
		return false
	case "down", "j":
		if o.cursor < len(o.lists)-1 {
			o.cursor++
		}
		return false
	case "enter":
		if list, ok := o.Selected(); ok && o.OnSelect != nil {
			o.OnSelect(list)
		}
		return true
	case "esc", "q", "b":
		if o.OnCancel != nil {
			o.OnCancel()
		}
		return true
	}
	return false
}

// Render renders the list selector overlay.
func (o *ListSelectorOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var content strings.Builder
	content.WriteString(titleStyle.Render(o.title))
	content.WriteString("\n\n")

	if len(o.lists) == 0 {
		content.WriteString(dimStyle.Render("No lists found"))
	}
	for i, list := range o.lists {
		line := fmt.Sprintf("%s (%d problems)", list.Name, len(list.Questions))
		if i == o.cursor {
			content.WriteString(selectedStyle.Render("> " + line))
		} else {
			content.WriteString("  " + line)
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(dimStyle.Render("↵ select • esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(o.width).
		Render(content.String())
}
