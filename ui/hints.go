package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"leetterm/richtext"
)

// HintsPane shows the problem's hints, revealed one at a time so the user is
// not spoiled by later hints while reading the first.
type HintsPane struct {
	viewport viewport.Model

	hints    []string
	revealed int

	width  int
	height int
}

func NewHintsPane() *HintsPane {
	return &HintsPane{viewport: viewport.New(0, 0)}
}

func (h *HintsPane) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.Width = width
	h.viewport.Height = height - 1
	if h.viewport.Height < 1 {
		h.viewport.Height = 1
	}
	h.refresh()
}

// SetHints sets the hint list and hides them all again.
func (h *HintsPane) SetHints(hints []string) {
	h.hints = hints
	h.revealed = 0
	h.viewport.GotoTop()
	h.refresh()
}

// Reveal uncovers the next hidden hint.
func (h *HintsPane) Reveal() {
	if h.revealed < len(h.hints) {
		h.revealed++
		h.refresh()
	}
}

func (h *HintsPane) refresh() {
	if len(h.hints) == 0 {
		h.viewport.SetContent(dimStyle.Render("no hints for this problem"))
		return
	}

	var b strings.Builder
	for i, hint := range h.hints {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Hint %d", i+1)))
		b.WriteString("\n")
		if i < h.revealed {
			// Hints use the same markup subset as problem statements.
			for _, line := range richtext.Render(hint) {
				b.WriteString("  ")
				b.WriteString(line.String())
				b.WriteString("\n")
			}
		} else {
			b.WriteString(dimStyle.Render("  press enter to reveal"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	h.viewport.SetContent(wordwrap.String(b.String(), h.width))
}

func (h *HintsPane) ScrollUp()   { h.viewport.LineUp(1) }
func (h *HintsPane) ScrollDown() { h.viewport.LineDown(1) }
func (h *HintsPane) HalfUp()     { h.viewport.HalfViewUp() }
func (h *HintsPane) HalfDown()   { h.viewport.HalfViewDown() }
func (h *HintsPane) GotoTop()    { h.viewport.GotoTop() }
func (h *HintsPane) GotoBottom() { h.viewport.GotoBottom() }

func (h *HintsPane) String() string {
	if h.width == 0 || h.height == 0 {
		return ""
	}
	footer := dimStyle.Render(fmt.Sprintf("%d of %d hints revealed", h.revealed, len(h.hints)))
	return strings.Join([]string{h.viewport.View(), footer}, "\n")
}
