package ui

import (
	"github.com/charmbracelet/lipgloss"

	"leetterm/api"
)

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	inactiveTabStyle  = lipgloss.NewStyle().
				Border(inactiveTabBorder, true).
				BorderForeground(highlightColor).
				AlignHorizontal(lipgloss.Center)
	activeTabStyle = inactiveTabStyle.
			Border(activeTabBorder, true).
			AlignHorizontal(lipgloss.Center)
	windowStyle = lipgloss.NewStyle().
			BorderForeground(highlightColor).
			Border(lipgloss.NormalBorder(), false, true, true, true)
)

const (
	DescriptionTab = iota
	CodeTab
	HintsTab
)

// TabbedWindow is the problem view: a tab row over the description, code and
// hints panes.
type TabbedWindow struct {
	tabs []string

	activeTab int
	height    int
	width     int

	description *DescriptionPane
	code        *CodePane
	hints       *HintsPane
}

func NewTabbedWindow(description *DescriptionPane, code *CodePane, hints *HintsPane) *TabbedWindow {
	return &TabbedWindow{
		tabs: []string{
			"Description",
			"Code",
			"Hints",
		},
		description: description,
		code:        code,
		hints:       hints,
	}
}

func (w *TabbedWindow) SetSize(width, height int) {
	w.width = width
	w.height = height

	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1
	contentHeight := height - tabHeight - windowStyle.GetVerticalFrameSize() - 2
	contentWidth := w.width - windowStyle.GetHorizontalFrameSize()

	w.description.SetSize(contentWidth, contentHeight)
	w.code.SetSize(contentWidth, contentHeight)
	w.hints.SetSize(contentWidth, contentHeight)
}

// SetDetail loads a problem into all three panes.
func (w *TabbedWindow) SetDetail(detail *api.QuestionDetail, langSlug string) {
	w.activeTab = DescriptionTab
	w.description.SetDetail(detail)
	if detail != nil {
		w.code.SetSnippet(detail, langSlug)
		w.hints.SetHints(detail.Hints)
	}
}

// Toggle cycles to the next tab.
func (w *TabbedWindow) Toggle() {
	w.activeTab = (w.activeTab + 1) % len(w.tabs)
}

// ActiveTab returns the index of the active tab.
func (w *TabbedWindow) ActiveTab() int {
	return w.activeTab
}

// Hints returns the hints pane for reveal handling.
func (w *TabbedWindow) Hints() *HintsPane {
	return w.hints
}

// Code returns the code pane so the app can swap in the local solution.
func (w *TabbedWindow) Code() *CodePane {
	return w.code
}

type scroller interface {
	ScrollUp()
	ScrollDown()
	HalfUp()
	HalfDown()
	GotoTop()
	GotoBottom()
}

func (w *TabbedWindow) active() scroller {
	switch w.activeTab {
	case CodeTab:
		return w.code
	case HintsTab:
		return w.hints
	}
	return w.description
}

func (w *TabbedWindow) ScrollUp()   { w.active().ScrollUp() }
func (w *TabbedWindow) ScrollDown() { w.active().ScrollDown() }
func (w *TabbedWindow) HalfUp()     { w.active().HalfUp() }
func (w *TabbedWindow) HalfDown()   { w.active().HalfDown() }
func (w *TabbedWindow) GotoTop()    { w.active().GotoTop() }
func (w *TabbedWindow) GotoBottom() { w.active().GotoBottom() }

func (w *TabbedWindow) String() string {
	if w.width == 0 || w.height == 0 {
		return ""
	}

	var renderedTabs []string

	tabWidth := w.width / len(w.tabs)
	lastTabWidth := w.width - tabWidth*(len(w.tabs)-1)
	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1

	for i, t := range w.tabs {
		width := tabWidth
		if i == len(w.tabs)-1 {
			width = lastTabWidth
		}

		var style lipgloss.Style
		isFirst, isLast, isActive := i == 0, i == len(w.tabs)-1, i == w.activeTab
		if isActive {
			style = activeTabStyle
		} else {
			style = inactiveTabStyle
		}
		border, _, _, _, _ := style.GetBorder()
		if isFirst && isActive {
			border.BottomLeft = "│"
		} else if isFirst {
			border.BottomLeft = "├"
		} else if isLast && isActive {
			border.BottomRight = "│"
		} else if isLast {
			border.BottomRight = "┤"
		}
		style = style.Border(border)
		style = style.Width(width - 1)
		renderedTabs = append(renderedTabs, style.Render(t))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	var content string
	switch w.activeTab {
	case CodeTab:
		content = w.code.String()
	case HintsTab:
		content = w.hints.String()
	default:
		content = w.description.String()
	}

	window := windowStyle.Render(
		lipgloss.Place(
			w.width-windowStyle.GetHorizontalFrameSize(),
			w.height-2-windowStyle.GetVerticalFrameSize()-tabHeight,
			lipgloss.Left, lipgloss.Top, content))

	return lipgloss.JoinVertical(lipgloss.Left, row, window)
}
