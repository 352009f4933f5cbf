package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors follow the terminal palette so the user's theme applies; the code
// block background is the one fixed RGB so inline code reads on any theme.
var (
	textColor     = lipgloss.Color("15")
	emphasisColor = lipgloss.Color("6")
	dimColor      = lipgloss.Color("7")
	borderColor   = lipgloss.Color("8")
	codeColor     = lipgloss.Color("3")
	codeBgColor   = lipgloss.Color("#282837")
	bulletColor   = lipgloss.Color("6")
)

// minPreWidth is the narrowest a code box will render, so single-character
// snippets still look like blocks.
const minPreWidth = 20

// parser holds the formatting state for one render call. One parser exists
// per Render invocation and is discarded afterwards.
type parser struct {
	lines   []Line
	current []Run
	buf     []rune

	bold      bool
	italic    bool
	code      bool
	pre       bool
	listDepth int

	lastWasBlank bool
	preLines     []Line
}

func (p *parser) style() Style {
	// Inline code stays visually distinct even inside emphasis, and
	// preformatted blocks honor only bold as a highlight accent.
	switch {
	case p.code && !p.pre:
		return Style{Foreground: codeColor, Background: codeBgColor}
	case p.pre:
		if p.bold {
			return Style{Foreground: emphasisColor, Bold: true}
		}
		return Style{Foreground: textColor}
	}

	s := Style{Foreground: textColor}
	if p.bold {
		s.Bold = true
		s.Foreground = emphasisColor
	}
	if p.italic {
		s.Italic = true
		if !p.bold {
			s.Foreground = dimColor
		}
	}
	return s
}

// flushBuf moves pending text into a run with the current style. Flushing an
// empty buffer is a no-op, so no run ever has empty text.
func (p *parser) flushBuf() {
	if len(p.buf) == 0 {
		return
	}
	p.current = append(p.current, Run{Text: string(p.buf), Style: p.style()})
	p.buf = p.buf[:0]
}

func (p *parser) pushLine() {
	p.flushBuf()
	if len(p.current) == 0 {
		return
	}
	p.lines = append(p.lines, Line{Runs: p.current})
	p.current = nil
	p.lastWasBlank = false
}

func (p *parser) ensureBlankLine() {
	p.flushBuf()
	if len(p.current) > 0 {
		p.pushLine()
	}
	if !p.lastWasBlank && len(p.lines) > 0 {
		p.lines = append(p.lines, Line{})
		p.lastWasBlank = true
	}
}

// pushPreLine ends one buffered preformatted line. Unlike pushLine it keeps
// empty lines, since blank lines inside code blocks are content.
func (p *parser) pushPreLine() {
	p.flushBuf()
	p.preLines = append(p.preLines, Line{Runs: p.current})
	p.current = nil
}

// emitPreBlock wraps the buffered preformatted lines in a bordered box and
// appends it to the output.
func (p *parser) emitPreBlock() {
	maxWidth := minPreWidth
	for _, l := range p.preLines {
		if w := l.Width(); w > maxWidth {
			maxWidth = w
		}
	}
	boxWidth := maxWidth + 2 // one padding column each side

	border := Style{Foreground: borderColor}
	bg := Style{Background: codeBgColor}

	p.lines = append(p.lines, Line{Runs: []Run{
		{Text: "  ╭", Style: border},
		{Text: strings.Repeat("─", boxWidth), Style: border},
		{Text: "╮", Style: border},
	}})

	for _, l := range p.preLines {
		pad := boxWidth - l.Width() - 1
		runs := []Run{
			{Text: "  │", Style: border},
			{Text: " ", Style: bg},
		}
		for _, r := range l.Runs {
			r.Style.Background = codeBgColor
			runs = append(runs, r)
		}
		if pad > 0 {
			runs = append(runs, Run{Text: strings.Repeat(" ", pad), Style: bg})
		}
		runs = append(runs, Run{Text: "│", Style: border})
		p.lines = append(p.lines, Line{Runs: runs})
	}

	p.lines = append(p.lines, Line{Runs: []Run{
		{Text: "  ╰", Style: border},
		{Text: strings.Repeat("─", boxWidth), Style: border},
		{Text: "╯", Style: border},
	}})

	p.preLines = nil
	p.lastWasBlank = false
}

func (p *parser) handleTag(tag string) (skipNewline bool) {
	lower := strings.ToLower(tag)
	closing := strings.HasPrefix(lower, "/")
	name := strings.TrimPrefix(lower, "/")
	if i := strings.IndexAny(name, " \t\n\r"); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "strong", "b":
		p.flushBuf()
		p.bold = !closing
	case "em", "i":
		p.flushBuf()
		p.italic = !closing
	case "code":
		p.flushBuf()
		if !p.pre {
			p.code = !closing
		}
	case "pre":
		p.flushBuf()
		if !closing {
			p.pre = true
			return true
		}
		if len(p.buf) > 0 || len(p.current) > 0 {
			p.pushPreLine()
		}
		p.pre = false
		p.emitPreBlock()
	case "p":
		if closing {
			if len(p.buf) > 0 || len(p.current) > 0 {
				p.pushLine()
			}
		} else if len(p.lines) > 0 && !p.lastWasBlank {
			p.ensureBlankLine()
		}
	case "br":
		if p.pre {
			p.pushPreLine()
		} else {
			p.pushLine()
		}
	case "ul", "ol":
		if !closing {
			p.listDepth++
		} else if p.listDepth > 0 {
			p.listDepth--
		}
	case "li":
		if !closing {
			p.flushBuf()
			if len(p.current) > 0 {
				p.pushLine()
			}
			indent := ""
			if p.listDepth > 1 {
				indent = strings.Repeat("  ", p.listDepth-1)
			}
			p.current = append(p.current, Run{
				Text:  indent + "  • ",
				Style: Style{Foreground: bulletColor},
			})
		} else {
			p.pushLine()
		}
	case "sup", "sub", "div", "span":
		// No terminal representation; text inside still renders.
	default:
		// Unrecognized tags are dropped rather than failing the render.
	}
	return false
}

// Render converts markup into styled display lines. It never fails: malformed
// tags, unknown entities, and unbalanced pairs all degrade to best-effort
// output. The result has no leading, trailing, or doubled blank lines.
func Render(markup string) []Line {
	p := &parser{}
	rs := []rune(markup)
	skipNewline := false

	for i := 0; i < len(rs); {
		ch := rs[i]
		switch {
		case ch == '<':
			i++
			start := i
			for i < len(rs) && rs[i] != '>' {
				i++
			}
			tag := string(rs[start:i])
			if i < len(rs) {
				i++ // consume '>'
			}
			if p.handleTag(tag) {
				skipNewline = true
			}

		case ch == '&':
			var text string
			text, i = decodeEntity(rs, i)
			p.buf = append(p.buf, []rune(text)...)

		case p.pre:
			i++
			if ch == '\n' {
				if skipNewline {
					skipNewline = false
					continue
				}
				p.pushPreLine()
			} else {
				skipNewline = false
				p.buf = append(p.buf, ch)
			}

		default:
			i++
			if ch == '\n' || ch == '\r' || ch == '\t' {
				if len(p.buf) > 0 && p.buf[len(p.buf)-1] != ' ' {
					p.buf = append(p.buf, ' ')
				}
			} else {
				p.buf = append(p.buf, ch)
			}
		}
	}

	// End of input closes everything that is still open.
	if p.pre {
		if len(p.buf) > 0 || len(p.current) > 0 {
			p.pushPreLine()
		}
		p.pre = false
		p.emitPreBlock()
	}
	p.flushBuf()
	if len(p.current) > 0 {
		p.pushLine()
	}

	return normalize(p.lines)
}

// normalize trims leading/trailing blank lines and collapses runs of blank
// lines into one. It runs once after the scan so the state machine above
// never needs lookback.
func normalize(lines []Line) []Line {
	start := 0
	for start < len(lines) && lines[start].Blank() {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1].Blank() {
		end--
	}

	result := make([]Line, 0, end-start)
	prevBlank := false
	for _, l := range lines[start:end] {
		if l.Blank() {
			if !prevBlank {
				result = append(result, Line{})
			}
			prevBlank = true
			continue
		}
		result = append(result, l)
		prevBlank = false
	}
	return result
}
