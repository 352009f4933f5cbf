package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"

	"leetterm/api"
)

// StatusBar is the single row at the top of the screen showing the signed-in
// user, their solve counts, and a transient activity message.
type StatusBar struct {
	width int

	username string
	stats    *api.UserStats
	message  string
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetUser(username string, stats *api.UserStats) {
	s.username = username
	s.stats = stats
}

// SetMessage sets the transient activity text, e.g. "running..." while a
// submission is in flight. Empty clears it.
func (s *StatusBar) SetMessage(message string) {
	s.message = message
}

func (s *StatusBar) String() string {
	left := titleStyle.Render("leetterm")
	if s.message != "" {
		left += "  " + dimStyle.Render(s.message)
	}

	var right string
	if s.username == "" {
		right = dimStyle.Render("not signed in")
	} else {
		right = s.username
		if s.stats != nil {
			right += "  " + strings.Join([]string{
				easyStyle.Render(fmt.Sprintf("E %d/%d", s.stats.EasySolved, s.stats.EasyTotal)),
				mediumStyle.Render(fmt.Sprintf("M %d/%d", s.stats.MediumSolved, s.stats.MediumTotal)),
				hardStyle.Render(fmt.Sprintf("H %d/%d", s.stats.HardSolved, s.stats.HardTotal)),
			}, " ")
		}
	}

	gap := s.width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
