package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

func TestRenderPlainText(t *testing.T) {
	lines := Render("hello world")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 1)
	assert.Equal(t, "hello world", lines[0].Runs[0].Text)
	assert.Equal(t, textColor, lines[0].Runs[0].Style.Foreground)
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Empty(t, Render(""))
	assert.Empty(t, Render("   \n\t\n  "))
}

func TestRenderInlineStyles(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		bold   bool
		italic bool
	}{
		{"bold via strong", "<strong>x</strong>", "x", true, false},
		{"bold via b", "<b>x</b>", "x", true, false},
		{"italic via em", "<em>x</em>", "x", false, true},
		{"italic via i", "<i>x</i>", "x", false, true},
		{"bold italic", "<strong><em>x</em></strong>", "x", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Render(tt.input)
			require.Len(t, lines, 1)
			require.Len(t, lines[0].Runs, 1)
			run := lines[0].Runs[0]
			assert.Equal(t, tt.text, run.Text)
			assert.Equal(t, tt.bold, run.Style.Bold)
			assert.Equal(t, tt.italic, run.Style.Italic)
		})
	}
}

// Balanced inline tags around plain text must come back as a single line
// whose concatenated text is the input with tags stripped.
func TestRenderRoundTrip(t *testing.T) {
	lines := Render("ab <strong>cd</strong> ef <em>gh</em> ij <code>kl</code> mn")
	require.Len(t, lines, 1)
	assert.Equal(t, "ab cd ef gh ij kl mn", lines[0].Text())
	assert.Greater(t, len(lines[0].Runs), 1)
}

func TestRenderStyleResolution(t *testing.T) {
	// Inline code keeps its own colors even inside emphasis.
	lines := Render("<strong><code>x</code></strong>")
	require.Len(t, lines, 1)
	run := lines[0].Runs[0]
	assert.Equal(t, codeColor, run.Style.Foreground)
	assert.Equal(t, codeBgColor, run.Style.Background)

	// Italic alone dims the foreground; italic with bold does not.
	run = Render("<em>x</em>")[0].Runs[0]
	assert.Equal(t, dimColor, run.Style.Foreground)
	run = Render("<strong><em>x</em></strong>")[0].Runs[0]
	assert.Equal(t, emphasisColor, run.Style.Foreground)
}

func TestRenderUnterminatedTagAtEOF(t *testing.T) {
	lines := Render("<strong>hello")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Runs, 1)
	assert.Equal(t, "hello", lines[0].Runs[0].Text)
	assert.True(t, lines[0].Runs[0].Style.Bold)
}

func TestRenderEntities(t *testing.T) {
	lines := Render("A &lt;B&gt; &amp; C")
	require.Len(t, lines, 1)
	got := lines[0].Text()
	assert.Equal(t, "A <B> & C", got)
	assert.NotContains(t, got, "&lt;")
	assert.NotContains(t, got, "&amp;")
}

func TestRenderWhitespaceCollapse(t *testing.T) {
	lines := Render("a\n\t\r\nb")
	require.Len(t, lines, 1)
	assert.Equal(t, "a b", lines[0].Text())
}

func TestRenderParagraphSeparation(t *testing.T) {
	lines := Render("<p>one</p><p>two</p>")
	require.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0].Text())
	assert.True(t, lines[1].Blank())
	assert.Equal(t, "two", lines[2].Text())
}

// Consecutive empty paragraphs may produce at most one blank line.
func TestRenderCollapsesBlankLines(t *testing.T) {
	lines := Render("a<p></p><p></p><p></p>b")
	blanks := 0
	for _, l := range lines {
		if l.Blank() {
			blanks++
		}
	}
	assert.LessOrEqual(t, blanks, 1)
}

func TestRenderNoLeadingOrTrailingBlanks(t *testing.T) {
	inputs := []string{
		"<p></p>text<p></p>",
		"<br><br>text<br><br>",
		"\n\n<p>a</p>\n\n",
		"<p>a</p><p></p><p></p><p>b</p>",
		"<ul><li>x</li></ul>",
		"<pre>code</pre>",
	}
	for _, in := range inputs {
		lines := Render(in)
		require.NotEmpty(t, lines, "input %q", in)
		assert.False(t, lines[0].Blank(), "leading blank for %q", in)
		assert.False(t, lines[len(lines)-1].Blank(), "trailing blank for %q", in)
		for i := 1; i < len(lines); i++ {
			if lines[i].Blank() {
				assert.False(t, lines[i-1].Blank(), "double blank for %q", in)
			}
		}
	}
}

func TestRenderLineBreaks(t *testing.T) {
	lines := Render("one<br>two")
	require.Len(t, lines, 2)
	assert.Equal(t, "one", lines[0].Text())
	assert.Equal(t, "two", lines[1].Text())
}

func TestRenderList(t *testing.T) {
	lines := Render("<ul><li>one</li><li>two</li></ul>")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0].Text(), "  • "))
	assert.True(t, strings.HasPrefix(lines[1].Text(), "  • "))
	assert.Contains(t, lines[0].Text(), "one")
	assert.Contains(t, lines[1].Text(), "two")
}

func TestRenderNestedListIndent(t *testing.T) {
	lines := Render("<ul><li>a</li><ul><li>b</li></ul></ul>")
	require.Len(t, lines, 2)
	assert.Equal(t, "  • a", lines[0].Text())
	assert.Equal(t, "    • b", lines[1].Text())
}

// Closing more lists than were opened must not underflow the depth.
func TestRenderListDepthFloor(t *testing.T) {
	lines := Render("</ul></ol><ul><li>x</li></ul>")
	require.Len(t, lines, 1)
	assert.Equal(t, "  • x", lines[0].Text())
}

func TestRenderPreBlock(t *testing.T) {
	lines := Render("<pre>\nshort\nmuch longer line here\n</pre>")
	// Top border, two content lines, bottom border.
	require.Len(t, lines, 4)

	top, bottom := lines[0].Text(), lines[len(lines)-1].Text()
	assert.True(t, strings.Contains(top, "╭") && strings.Contains(top, "╮"))
	assert.True(t, strings.Contains(bottom, "╰") && strings.Contains(bottom, "╯"))

	// Every content line has identical rendered width.
	w := lines[1].Width()
	for _, l := range lines[2 : len(lines)-1] {
		assert.Equal(t, w, l.Width())
	}
	assert.Contains(t, lines[1].Text(), "short")
	assert.Contains(t, lines[2].Text(), "much longer line here")
}

func TestRenderPreSkipsLeadingNewline(t *testing.T) {
	lines := Render("<pre>\nx</pre>")
	// Top border, one content line, bottom border. No blank first line.
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1].Text(), "x")
}

func TestRenderPrePreservesWhitespace(t *testing.T) {
	lines := Render("<pre>a   b\n\tc</pre>")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1].Text(), "a   b")
	assert.Contains(t, lines[2].Text(), "\tc")
}

func TestRenderCodeIgnoredInsidePre(t *testing.T) {
	lines := Render("<pre><code>x</code></pre>")
	require.Len(t, lines, 3)
	run := lines[1].Runs[2] // border, padding, content
	assert.Equal(t, textColor, run.Style.Foreground)
	assert.Equal(t, codeBgColor, run.Style.Background)
}

// End of input while a pre block is open still emits the box.
func TestRenderUnclosedPre(t *testing.T) {
	lines := Render("<pre>dangling")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0].Text(), "╭")
	assert.Contains(t, lines[1].Text(), "dangling")
	assert.Contains(t, lines[2].Text(), "╯")
}

func TestRenderPreMinimumWidth(t *testing.T) {
	lines := Render("<pre>x</pre>")
	require.Len(t, lines, 3)
	// 2 indent columns + left corner + (minPreWidth+2) dashes + right corner.
	assert.Equal(t, minPreWidth+6, lines[0].Width())
}

func TestRenderUnknownTagsIgnored(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sup", "x<sup>2</sup>", "x2"},
		{"div and span", "<div><span>a</span></div>", "a"},
		{"img", `a<img src="x.png">b`, "ab"},
		{"table", "<table><tr><td>c</td></tr></table>", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Render(tt.input)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0].Text())
		})
	}
}

func TestRenderTagCaseInsensitive(t *testing.T) {
	lines := Render("<STRONG>x</STRONG>")
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Runs[0].Style.Bold)
}

func TestRenderTagWithAttributes(t *testing.T) {
	lines := Render(`<p class="wide">a</p>`)
	require.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].Text())
}

func TestRenderRealisticProblem(t *testing.T) {
	html := `<p>Given an array of integers <code>nums</code>&nbsp;and an integer <code>target</code>, ` +
		`return <em>indices of the two numbers</em>.</p>` +
		`<p><strong>Example 1:</strong></p>` +
		`<pre>
<strong>Input:</strong> nums = [2,7,11,15], target = 9
<strong>Output:</strong> [0,1]
</pre>` +
		`<p><strong>Constraints:</strong></p>` +
		`<ul><li><code>2 &lt;= nums.length &lt;= 10<sup>4</sup></code></li></ul>`

	lines := Render(html)
	require.NotEmpty(t, lines)

	joined := make([]string, 0, len(lines))
	for _, l := range lines {
		joined = append(joined, l.Text())
	}
	text := strings.Join(joined, "\n")
	assert.Contains(t, text, "Given an array of integers nums")
	assert.Contains(t, text, "Input:")
	assert.Contains(t, text, "2 <= nums.length <= 104")
	assert.False(t, lines[0].Blank())
	assert.False(t, lines[len(lines)-1].Blank())
}

func TestLineHelpers(t *testing.T) {
	l := Line{Runs: []Run{{Text: "ab"}, {Text: "cd", Style: Style{Bold: true}}}}
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, "abcd", l.Text())
	assert.False(t, l.Blank())

	assert.True(t, Line{}.Blank())
	assert.True(t, Line{Runs: []Run{{Text: "  "}}}.Blank())
}
