package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"leetterm/api"
	"leetterm/richtext"
)

// DescriptionPane shows the rendered problem statement.
type DescriptionPane struct {
	detail   *api.QuestionDetail
	viewport viewport.Model

	width  int
	height int
}

func NewDescriptionPane() *DescriptionPane {
	return &DescriptionPane{viewport: viewport.New(0, 0)}
}

func (d *DescriptionPane) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = height - 1 // keep a row for the scroll indicator
	if d.viewport.Height < 1 {
		d.viewport.Height = 1
	}
	d.refresh()
}

// SetDetail sets the problem to display. nil shows a loading placeholder.
func (d *DescriptionPane) SetDetail(detail *api.QuestionDetail) {
	d.detail = detail
	d.viewport.GotoTop()
	d.refresh()
}

func (d *DescriptionPane) refresh() {
	if d.detail == nil || d.width == 0 {
		d.viewport.SetContent("")
		return
	}
	d.viewport.SetContent(d.renderContent())
}

func (d *DescriptionPane) renderContent() string {
	detail := d.detail

	header := fmt.Sprintf("%s. %s", detail.FrontendQuestionID, detail.Title)
	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("  ")
	b.WriteString(DifficultyStyle(detail.Difficulty).Render(detail.Difficulty))
	if detail.Status == "ac" {
		b.WriteString("  ")
		b.WriteString(solvedStyle.Render("✓ solved"))
	}
	if len(detail.TopicTags) > 0 {
		tags := make([]string, len(detail.TopicTags))
		for i, tag := range detail.TopicTags {
			tags[i] = tag.Name
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(strings.Join(tags, " · ")))
	}
	b.WriteString("\n\n")

	switch {
	case detail.IsPaidOnly && detail.Content == "":
		b.WriteString(paidStyle.Render("This is a premium problem. Sign in with a subscribed account to view it."))
	case detail.Content == "":
		b.WriteString(dimStyle.Render("No description available."))
	default:
		for _, line := range richtext.Render(detail.Content) {
			b.WriteString("  ")
			b.WriteString(line.String())
			b.WriteString("\n")
		}
	}

	return wordwrap.String(b.String(), d.width)
}

func (d *DescriptionPane) ScrollUp()   { d.viewport.LineUp(1) }
func (d *DescriptionPane) ScrollDown() { d.viewport.LineDown(1) }
func (d *DescriptionPane) HalfUp()     { d.viewport.HalfViewUp() }
func (d *DescriptionPane) HalfDown()   { d.viewport.HalfViewDown() }
func (d *DescriptionPane) GotoTop()    { d.viewport.GotoTop() }
func (d *DescriptionPane) GotoBottom() { d.viewport.GotoBottom() }

func (d *DescriptionPane) String() string {
	if d.width == 0 || d.height == 0 {
		return ""
	}
	if d.detail == nil {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("loading..."))
	}

	indicator := dimStyle.Render(fmt.Sprintf("%3.0f%%", d.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, d.viewport.View(), indicator)
}
