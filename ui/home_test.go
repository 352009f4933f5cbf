package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetterm/api"
)

func testProblems(n int) []api.ProblemSummary {
	problems := make([]api.ProblemSummary, n)
	for i := range problems {
		status := ""
		if i%2 == 0 {
			status = "ac"
		}
		problems[i] = api.ProblemSummary{
			FrontendQuestionID: fmt.Sprintf("%d", i+1),
			Title:              fmt.Sprintf("Problem %d", i+1),
			TitleSlug:          fmt.Sprintf("problem-%d", i+1),
			Difficulty:         "Easy",
			Status:             status,
			ACRate:             50.0,
		}
	}
	return problems
}

func TestHomePaneNavigation(t *testing.T) {
	h := NewHomePane()
	h.SetSize(80, 20)
	h.SetProblems(testProblems(50), 50)

	require.NotNil(t, h.Selected())
	assert.Equal(t, "1", h.Selected().FrontendQuestionID)

	h.Down()
	h.Down()
	assert.Equal(t, "3", h.Selected().FrontendQuestionID)

	h.Up()
	assert.Equal(t, "2", h.Selected().FrontendQuestionID)

	h.Bottom()
	assert.Equal(t, "50", h.Selected().FrontendQuestionID)

	// Down at the end stays put.
	h.Down()
	assert.Equal(t, "50", h.Selected().FrontendQuestionID)

	h.Top()
	assert.Equal(t, "1", h.Selected().FrontendQuestionID)

	h.Up()
	assert.Equal(t, "1", h.Selected().FrontendQuestionID)
}

func TestHomePaneHideSolved(t *testing.T) {
	h := NewHomePane()
	h.SetSize(80, 20)
	h.SetProblems(testProblems(10), 10)
	h.SetFilters("", "", true)

	// Even-indexed problems are solved, so only odd ids remain.
	assert.Equal(t, "2", h.Selected().FrontendQuestionID)
	h.Bottom()
	assert.Equal(t, "10", h.Selected().FrontendQuestionID)
}

func TestHomePanePaging(t *testing.T) {
	h := NewHomePane()
	h.SetSize(80, 20)
	h.SetProblems(testProblems(50), 120)

	assert.Equal(t, 50, h.Loaded())
	assert.True(t, h.HasMore())
	assert.False(t, h.NearEnd())

	h.Bottom()
	assert.True(t, h.NearEnd())

	h.AppendProblems(testProblems(50), 120)
	assert.Equal(t, 100, h.Loaded())

	h.AppendProblems(testProblems(20), 120)
	assert.False(t, h.HasMore())
}

func TestHomePaneEmpty(t *testing.T) {
	h := NewHomePane()
	h.SetSize(80, 20)
	h.SetProblems(nil, 0)

	assert.Nil(t, h.Selected())
	h.Down() // must not panic
	h.Bottom()
	assert.Nil(t, h.Selected())
}

func TestHomePaneString(t *testing.T) {
	h := NewHomePane()
	h.SetSize(80, 10)
	h.SetProblems(testProblems(3), 3)
	h.SetFilters("MEDIUM", "sum", false)

	out := h.String()
	assert.Contains(t, out, "Problem 1")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "difficulty: medium")
	assert.Contains(t, out, "search: sum")
	assert.Contains(t, out, "3 of 3")
}
