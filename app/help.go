package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leetterm/config"
	"leetterm/ui/overlay"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit mask for this help text. These are used to track
	// which one-time help screens have been seen in the app state.
	mask() uint32
}

type helpTypeGeneral struct{}

type helpTypeScaffold struct {
	path string
}

func (h helpTypeGeneral) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("leetterm"),
		"",
		"A terminal client for browsing, running and submitting coding problems.",
		"",
		headerStyle.Render("Problem List:"),
		keyStyle.Render("↑/k, ↓/j")+descStyle.Render("  - Move between problems"),
		keyStyle.Render("g/G")+descStyle.Render("       - Jump to top/bottom"),
		keyStyle.Render("d/u")+descStyle.Render("       - Half page down/up"),
		keyStyle.Render("↵")+descStyle.Render("         - Open the selected problem"),
		keyStyle.Render("/")+descStyle.Render("         - Search by keyword"),
		keyStyle.Render("f")+descStyle.Render("         - Cycle difficulty filter"),
		keyStyle.Render("H")+descStyle.Render("         - Hide/show solved problems"),
		keyStyle.Render("L")+descStyle.Render("         - Browse favorites lists"),
		"",
		headerStyle.Render("Problem View:"),
		keyStyle.Render("tab")+descStyle.Render("       - Switch description/code/hints tabs"),
		keyStyle.Render("o")+descStyle.Render("         - Scaffold and open in your editor"),
		keyStyle.Render("r")+descStyle.Render("         - Run against the sample testcase"),
		keyStyle.Render("s")+descStyle.Render("         - Submit your solution"),
		keyStyle.Render("y")+descStyle.Render("         - Copy the problem URL"),
		keyStyle.Render("a")+descStyle.Render("         - Add problem to a favorites list"),
		keyStyle.Render("b/esc")+descStyle.Render("     - Back to the list"),
		"",
		headerStyle.Render("Other:"),
		keyStyle.Render("S")+descStyle.Render("         - Settings (session cookie, language)"),
		keyStyle.Render("?")+descStyle.Render("         - Show this help screen"),
		keyStyle.Render("q")+descStyle.Render("         - Quit"),
	)
}

func (h helpTypeScaffold) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Problem Scaffolded"),
		"",
		descStyle.Render("Starter code written to:"),
		descStyle.Render("  "+lipgloss.NewStyle().Bold(true).Render(h.path)),
		"",
		descStyle.Render(fmt.Sprintf("The sample testcase is in %s next to it.", lipgloss.NewStyle().Bold(true).Render("testcase.txt"))),
		"",
		headerStyle.Render("Next steps:"),
		keyStyle.Render("r")+descStyle.Render("     - Run your code against the sample testcase"),
		keyStyle.Render("s")+descStyle.Render("     - Submit when the run passes"),
		keyStyle.Render("o")+descStyle.Render("     - Reopen the file in your editor"),
	)
}

func (h helpTypeGeneral) mask() uint32 {
	return 1
}

func (h helpTypeScaffold) mask() uint32 {
	return 1 << 1
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

// showHelpScreen displays the help screen overlay if it hasn't been shown
// before. The general help screen always shows.
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	var alwaysShow bool
	switch helpType.(type) {
	case helpTypeGeneral:
		alwaysShow = true
	}

	flag := helpType.mask()
	if alwaysShow || (m.appState.HelpScreensSeen&flag) == 0 {
		m.appState.HelpScreensSeen |= flag
		config.SaveState(m.appState)

		m.textOverlay = overlay.NewTextOverlay(helpType.toContent())
		m.textOverlay.OnDismiss = onDismiss
		if m.width > 0 && m.height > 0 {
			m.textOverlay.SetSize(int(float32(m.width)*0.6), int(float32(m.height)*0.8))
		}
		m.returnState = m.state
		m.state = stateHelp
		return m, nil
	}

	if onDismiss != nil {
		onDismiss()
	}
	return m, nil
}

// handleHelpState handles key events when the help overlay is up.
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.textOverlay.HandleKeyPress(msg) {
		m.state = m.returnState
		m.textOverlay = nil
	}
	return m, nil
}
