package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"leetterm/api"
)

// ResultKind distinguishes a sample run from a full submission.
type ResultKind int

const (
	ResultRun ResultKind = iota
	ResultSubmit
)

func (k ResultKind) String() string {
	if k == ResultSubmit {
		return "Submit"
	}
	return "Run"
}

var (
	resultAcceptedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	resultFailedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	resultTimeoutStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	resultValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultOkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	resultBadStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func verdictHeader(resp *api.CheckResponse) string {
	switch resp.StatusCode {
	case api.StatusAccepted:
		return resultAcceptedStyle.Render("✔ " + resp.StatusMsg)
	case api.StatusTimeLimit:
		return resultTimeoutStyle.Render("⏱ " + resp.StatusMsg)
	default:
		return resultFailedStyle.Render("✘ " + resp.StatusMsg)
	}
}

// BuildResultLines converts a judge response into the display lines of the
// result screen.
func BuildResultLines(resp *api.CheckResponse, kind ResultKind) []string {
	codeOutput := resp.CodeAnswer
	if len(codeOutput) == 0 {
		codeOutput = resp.CodeOutput
	}
	expected := resp.ExpectedOutput
	if expected == "" {
		expected = strings.Join(resp.ExpectedCodeAnswer, "\n")
	}
	compileError := resp.FullCompileError
	if compileError == "" {
		compileError = resp.CompileError
	}

	var lines []string
	lines = append(lines, "", "  "+verdictHeader(resp), "")

	if resp.TotalCorrect != nil && resp.TotalTestcases != nil {
		counts := fmt.Sprintf("%d / %d", *resp.TotalCorrect, *resp.TotalTestcases)
		style := resultOkStyle
		if *resp.TotalCorrect != *resp.TotalTestcases {
			style = resultTimeoutStyle
		}
		lines = append(lines, "  Passed: "+style.Render(counts))
	}
	if resp.StatusRuntime != "" {
		lines = append(lines, "  Runtime: "+resultValueStyle.Render(resp.StatusRuntime))
	}
	if resp.StatusMemory != "" {
		lines = append(lines, "  Memory: "+resultValueStyle.Render(resp.StatusMemory))
	}

	if compileError != "" {
		lines = append(lines, "", "  "+resultFailedStyle.Render("Compile Error:"))
		for _, line := range strings.Split(compileError, "\n") {
			lines = append(lines, "  "+resultBadStyle.Render(line))
		}
	}

	failed := resp.StatusCode != api.StatusAccepted && resp.StatusCode != api.StatusCompileError
	if failed {
		if resp.LastTestcase != "" {
			lines = append(lines, "", "  "+lipgloss.NewStyle().Bold(true).Render("Last Testcase:"))
			for _, line := range strings.Split(resp.LastTestcase, "\n") {
				lines = append(lines, "    "+dimStyle.Render(line))
			}
		}
		if expected != "" {
			lines = append(lines, "", "  "+resultOkStyle.Bold(true).Render("Expected:"))
			for _, line := range strings.Split(expected, "\n") {
				lines = append(lines, "    "+resultOkStyle.Render(line))
			}
		}
		if len(codeOutput) > 0 {
			lines = append(lines, "", "  "+resultBadStyle.Bold(true).Render("Output:"))
			for _, line := range codeOutput {
				lines = append(lines, "    "+resultBadStyle.Render(line))
			}
		}
	}

	// A successful sample run still shows what the code printed.
	if kind == ResultRun && resp.StatusCode == api.StatusAccepted {
		if len(codeOutput) > 0 {
			lines = append(lines, "", "  "+lipgloss.NewStyle().Bold(true).Render("Output:"))
			for _, line := range codeOutput {
				lines = append(lines, "    "+line)
			}
		}
		if expected != "" {
			lines = append(lines, "", "  "+lipgloss.NewStyle().Bold(true).Render("Expected:"))
			for _, line := range strings.Split(expected, "\n") {
				lines = append(lines, "    "+resultOkStyle.Render(line))
			}
		}
	}

	return lines
}

// ResultPane is the run/submit result screen.
type ResultPane struct {
	viewport viewport.Model

	kind    ResultKind
	title   string
	pending bool
	err     error
	spinner string

	width  int
	height int
}

func NewResultPane() *ResultPane {
	return &ResultPane{viewport: viewport.New(0, 0)}
}

func (r *ResultPane) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height - 2 // title row and its separator
	if r.viewport.Height < 1 {
		r.viewport.Height = 1
	}
}

// Start puts the pane into the pending state while the judge works.
func (r *ResultPane) Start(kind ResultKind, title string) {
	r.kind = kind
	r.title = title
	r.pending = true
	r.err = nil
	r.viewport.GotoTop()
	r.viewport.SetContent("")
}

// SetSpinner sets the current spinner frame shown while pending.
func (r *ResultPane) SetSpinner(view string) {
	r.spinner = view
}

// SetResult displays the judge's verdict.
func (r *ResultPane) SetResult(resp *api.CheckResponse) {
	r.pending = false
	r.err = nil
	r.viewport.SetContent(strings.Join(BuildResultLines(resp, r.kind), "\n"))
}

// SetError displays a failure to get a verdict at all.
func (r *ResultPane) SetError(err error) {
	r.pending = false
	r.err = err
	r.viewport.SetContent("\n  " + errStyle.Render("Error: "+err.Error()))
}

func (r *ResultPane) ScrollUp()   { r.viewport.LineUp(1) }
func (r *ResultPane) ScrollDown() { r.viewport.LineDown(1) }
func (r *ResultPane) HalfUp()     { r.viewport.HalfViewUp() }
func (r *ResultPane) HalfDown()   { r.viewport.HalfViewDown() }

func (r *ResultPane) String() string {
	if r.width == 0 || r.height == 0 {
		return ""
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("3")).
		Render(fmt.Sprintf(" %s Result ", r.kind))
	header := badge + " " + lipgloss.NewStyle().Bold(true).Render(r.title)
	separator := dimStyle.Render(strings.Repeat("─", r.width))

	body := r.viewport.View()
	if r.pending {
		body = "\n  " + resultTimeoutStyle.Render(r.spinner+" Running...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, separator, body)
}
