package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"

	"leetterm/api"
)

// padRight pads s with spaces to width display cells, ignoring ANSI escapes.
func padRight(s string, width int) string {
	gap := width - ansi.PrintableRuneWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// HomePane is the problem list: one row per problem with progress marker,
// id, title, acceptance rate and difficulty.
type HomePane struct {
	problems []api.ProblemSummary
	total    int

	selected int
	offset   int

	width  int
	height int

	difficulty string
	search     string
	hideSolved bool
}

func NewHomePane() *HomePane {
	return &HomePane{}
}

func (h *HomePane) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.clamp()
}

// SetProblems replaces the loaded problems, e.g. after a filter change.
func (h *HomePane) SetProblems(problems []api.ProblemSummary, total int) {
	h.problems = problems
	h.total = total
	h.selected = 0
	h.offset = 0
}

// AppendProblems adds the next page of results.
func (h *HomePane) AppendProblems(problems []api.ProblemSummary, total int) {
	h.problems = append(h.problems, problems...)
	h.total = total
}

// Loaded returns how many problems have been fetched so far.
func (h *HomePane) Loaded() int {
	return len(h.problems)
}

// HasMore reports whether the server has more rows beyond what is loaded.
func (h *HomePane) HasMore() bool {
	return len(h.problems) < h.total
}

// NearEnd reports whether the selection is close enough to the end of the
// loaded rows that the next page should be fetched.
func (h *HomePane) NearEnd() bool {
	return h.selected >= len(h.visible())-10
}

// SetFilters records the active filters for display in the footer. The
// actual difficulty/search filtering happens server side; hideSolved is
// applied locally.
func (h *HomePane) SetFilters(difficulty, search string, hideSolved bool) {
	h.difficulty = difficulty
	h.search = search
	h.hideSolved = hideSolved
	h.selected = 0
	h.offset = 0
}

// HideSolved reports whether solved problems are filtered out.
func (h *HomePane) HideSolved() bool {
	return h.hideSolved
}

// visible returns the rows after local filtering.
func (h *HomePane) visible() []api.ProblemSummary {
	if !h.hideSolved {
		return h.problems
	}
	filtered := make([]api.ProblemSummary, 0, len(h.problems))
	for _, p := range h.problems {
		if p.Status != "ac" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Selected returns the problem under the cursor.
func (h *HomePane) Selected() *api.ProblemSummary {
	rows := h.visible()
	if h.selected < 0 || h.selected >= len(rows) {
		return nil
	}
	p := rows[h.selected]
	return &p
}

func (h *HomePane) rowCount() int {
	// Header, separator and footer take three rows.
	n := h.height - 3
	if n < 1 {
		n = 1
	}
	return n
}

func (h *HomePane) Up()   { h.move(-1) }
func (h *HomePane) Down() { h.move(1) }

func (h *HomePane) HalfUp()   { h.move(-h.rowCount() / 2) }
func (h *HomePane) HalfDown() { h.move(h.rowCount() / 2) }

func (h *HomePane) Top() {
	h.selected = 0
	h.clamp()
}

func (h *HomePane) Bottom() {
	h.selected = len(h.visible()) - 1
	h.clamp()
}

func (h *HomePane) move(delta int) {
	h.selected += delta
	h.clamp()
}

func (h *HomePane) clamp() {
	rows := len(h.visible())
	if h.selected >= rows {
		h.selected = rows - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}

	visible := h.rowCount()
	if h.selected < h.offset {
		h.offset = h.selected
	}
	if h.selected >= h.offset+visible {
		h.offset = h.selected - visible + 1
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

func (h *HomePane) footer() string {
	rows := h.visible()
	parts := []string{fmt.Sprintf("%d of %d", len(rows), h.total)}
	if h.difficulty != "" {
		parts = append(parts, "difficulty: "+strings.ToLower(h.difficulty))
	}
	if h.search != "" {
		parts = append(parts, "search: "+h.search)
	}
	if h.hideSolved {
		parts = append(parts, "hiding solved")
	}
	return dimStyle.Render(strings.Join(parts, " • "))
}

func (h *HomePane) String() string {
	if h.width == 0 || h.height == 0 {
		return ""
	}

	// Fixed columns: marker(1) id(5) acRate(7) difficulty(6) plus spacing.
	titleWidth := h.width - 1 - 5 - 7 - 6 - 8
	if titleWidth < 10 {
		titleWidth = 10
	}

	var b strings.Builder
	header := fmt.Sprintf("  %5s  %s  %6s  %-6s", "#", padRight("Title", titleWidth), "Acc", "Diff")
	b.WriteString(titleStyle.Render(truncate.String(header, uint(h.width))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", h.width)))
	b.WriteString("\n")

	rows := h.visible()
	end := h.offset + h.rowCount()
	if end > len(rows) {
		end = len(rows)
	}

	for i := h.offset; i < end; i++ {
		p := rows[i]
		title := truncate.StringWithTail(p.Title, uint(titleWidth), "…")
		if p.IsPaidOnly {
			title = truncate.StringWithTail(p.Title, uint(titleWidth-2), "…") + " " + paidStyle.Render("$")
		}

		line := fmt.Sprintf("%s %5s  %s  %5.1f%%  %s",
			statusGlyph(p.Status), p.FrontendQuestionID, padRight(title, titleWidth),
			p.ACRate, DifficultyStyle(p.Difficulty).Render(p.Difficulty))

		if i == h.selected {
			line = lipgloss.NewStyle().Bold(true).Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - h.offset; i < h.rowCount(); i++ {
		b.WriteString("\n")
	}

	b.WriteString(h.footer())
	return b.String()
}
