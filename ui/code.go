package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"leetterm/api"
	"leetterm/log"
)

// chromaLexers maps language slugs to chroma lexer names where they differ.
var chromaLexers = map[string]string{
	"golang":  "go",
	"python3": "python",
	"cpp":     "c++",
	"csharp":  "c#",
}

func lexerName(langSlug string) string {
	if name, ok := chromaLexers[langSlug]; ok {
		return name
	}
	return langSlug
}

// CodePane shows the starter snippet, or the local solution once one exists,
// with syntax highlighting.
type CodePane struct {
	viewport viewport.Model

	code     string
	langSlug string
	label    string

	width  int
	height int
}

func NewCodePane() *CodePane {
	return &CodePane{viewport: viewport.New(0, 0)}
}

func (c *CodePane) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = width
	c.viewport.Height = height - 1
	if c.viewport.Height < 1 {
		c.viewport.Height = 1
	}
	c.refresh()
}

// SetCode sets the code to display. label tells the user where it came from,
// e.g. "starter code" or the solution file path.
func (c *CodePane) SetCode(code, langSlug, label string) {
	c.code = code
	c.langSlug = langSlug
	c.label = label
	c.viewport.GotoTop()
	c.refresh()
}

// SetSnippet shows the starter snippet for the given language.
func (c *CodePane) SetSnippet(detail *api.QuestionDetail, langSlug string) {
	snippet, ok := detail.Snippet(langSlug)
	if !ok {
		c.SetCode("", langSlug, "")
		return
	}
	c.SetCode(snippet.Code, langSlug, snippet.Lang+" starter code")
}

func (c *CodePane) refresh() {
	if c.code == "" {
		c.viewport.SetContent(dimStyle.Render("no starter code for this language"))
		return
	}

	var b strings.Builder
	if err := quick.Highlight(&b, c.code, lexerName(c.langSlug), "terminal256", "monokai"); err != nil {
		log.WarningLog.Printf("syntax highlighting failed: %v", err)
		b.Reset()
		b.WriteString(c.code)
	}
	c.viewport.SetContent(b.String())
}

func (c *CodePane) ScrollUp()   { c.viewport.LineUp(1) }
func (c *CodePane) ScrollDown() { c.viewport.LineDown(1) }
func (c *CodePane) HalfUp()     { c.viewport.HalfViewUp() }
func (c *CodePane) HalfDown()   { c.viewport.HalfViewDown() }
func (c *CodePane) GotoTop()    { c.viewport.GotoTop() }
func (c *CodePane) GotoBottom() { c.viewport.GotoBottom() }

func (c *CodePane) String() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	footer := dimStyle.Render(c.label)
	return lipgloss.JoinVertical(lipgloss.Left, c.viewport.View(), footer)
}
