// Package richtext converts the HTML subset returned by the problem service
// into styled display lines for a terminal grid. It is a single forward scan
// with no tree construction: unknown tags are ignored and unknown entities
// pass through literally, so third-party markup can never fail a render.
package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Style is the attribute set of a run. The zero value renders as unstyled
// text. Colors are lipgloss color strings so the display layer can feed them
// straight into its styles.
type Style struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Bold       bool
	Italic     bool
}

func (s Style) lipglossStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(s.Foreground)
	}
	if s.Background != "" {
		st = st.Background(s.Background)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	return st
}

// Run is a maximal span of text sharing one style. Runs are immutable once
// appended to a line and never have empty text.
type Run struct {
	Text  string
	Style Style
}

// Line is one terminal row's worth of ordered runs. A line with no runs is a
// blank line.
type Line struct {
	Runs []Run
}

// Width returns the rendered width of the line in display cells.
func (l Line) Width() int {
	w := 0
	for _, r := range l.Runs {
		w += runewidth.StringWidth(r.Text)
	}
	return w
}

// Blank reports whether the line has no runs or only whitespace text.
func (l Line) Blank() bool {
	for _, r := range l.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return false
		}
	}
	return true
}

// Text returns the line's text with all styling stripped.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// String renders the line to an ANSI-styled string.
func (l Line) String() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Style.lipglossStyle().Render(r.Text))
	}
	return b.String()
}
