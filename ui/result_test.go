package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"leetterm/api"
)

func intPtr(n int) *int { return &n }

func joined(lines []string) string { return strings.Join(lines, "\n") }

func TestBuildResultLinesAccepted(t *testing.T) {
	resp := &api.CheckResponse{
		State:          "SUCCESS",
		StatusCode:     api.StatusAccepted,
		StatusMsg:      "Accepted",
		StatusRuntime:  "4 ms",
		StatusMemory:   "6.2 MB",
		TotalCorrect:   intPtr(57),
		TotalTestcases: intPtr(57),
	}

	out := joined(BuildResultLines(resp, ResultSubmit))
	assert.Contains(t, out, "✔ Accepted")
	assert.Contains(t, out, "57 / 57")
	assert.Contains(t, out, "4 ms")
	assert.Contains(t, out, "6.2 MB")
	assert.NotContains(t, out, "Last Testcase")
	assert.NotContains(t, out, "Expected:")
}

func TestBuildResultLinesWrongAnswer(t *testing.T) {
	resp := &api.CheckResponse{
		State:              "SUCCESS",
		StatusCode:         api.StatusWrongAnswer,
		StatusMsg:          "Wrong Answer",
		TotalCorrect:       intPtr(12),
		TotalTestcases:     intPtr(57),
		LastTestcase:       "[3,3]\n6",
		ExpectedCodeAnswer: []string{"[0,1]"},
		CodeAnswer:         []string{"[1,0]"},
	}

	out := joined(BuildResultLines(resp, ResultRun))
	assert.Contains(t, out, "✘ Wrong Answer")
	assert.Contains(t, out, "12 / 57")
	assert.Contains(t, out, "Last Testcase:")
	assert.Contains(t, out, "[3,3]")
	assert.Contains(t, out, "Expected:")
	assert.Contains(t, out, "[0,1]")
	assert.Contains(t, out, "Output:")
	assert.Contains(t, out, "[1,0]")
}

func TestBuildResultLinesCompileError(t *testing.T) {
	resp := &api.CheckResponse{
		State:            "SUCCESS",
		StatusCode:       api.StatusCompileError,
		StatusMsg:        "Compile Error",
		FullCompileError: "main.go:3: undefined: x",
		LastTestcase:     "[2,7]\n9",
	}

	out := joined(BuildResultLines(resp, ResultSubmit))
	assert.Contains(t, out, "✘ Compile Error")
	assert.Contains(t, out, "undefined: x")
	// Testcase diff sections are pointless when nothing compiled.
	assert.NotContains(t, out, "Last Testcase:")
}

func TestBuildResultLinesTimeLimit(t *testing.T) {
	resp := &api.CheckResponse{
		State:      "SUCCESS",
		StatusCode: api.StatusTimeLimit,
		StatusMsg:  "Time Limit Exceeded",
	}

	out := joined(BuildResultLines(resp, ResultSubmit))
	assert.Contains(t, out, "⏱ Time Limit Exceeded")
}

func TestBuildResultLinesRunAcceptedShowsOutput(t *testing.T) {
	resp := &api.CheckResponse{
		State:              "SUCCESS",
		StatusCode:         api.StatusAccepted,
		StatusMsg:          "Accepted",
		CodeAnswer:         []string{"[0,1]"},
		ExpectedCodeAnswer: []string{"[0,1]"},
	}

	out := joined(BuildResultLines(resp, ResultRun))
	assert.Contains(t, out, "Output:")
	assert.Contains(t, out, "Expected:")

	// A submission hides them on success.
	out = joined(BuildResultLines(resp, ResultSubmit))
	assert.NotContains(t, out, "Output:")
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "Run", ResultRun.String())
	assert.Equal(t, "Submit", ResultSubmit.String())
}
