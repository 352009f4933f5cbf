package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyTop
	KeyBottom
	KeyHalfDown
	KeyHalfUp
	KeyEnter
	KeyQuit
	KeyBack

	KeyScaffold    // open the problem in the editor workspace
	KeyAddFavorite // add the selected problem to a favorites list
	KeyRun         // run the solution against the sample testcase
	KeySubmit      // submit the solution
	KeyYank        // copy the problem URL to the clipboard

	KeySearch
	KeyFilter
	KeyHideSolved
	KeyFavorites
	KeySettings
	KeyHelp

	KeyTab // switch between detail tabs
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"g":      KeyTop,
	"G":      KeyBottom,
	"d":      KeyHalfDown,
	"u":      KeyHalfUp,
	"enter":  KeyEnter,
	"o":      KeyScaffold,
	"a":      KeyAddFavorite,
	"r":      KeyRun,
	"s":      KeySubmit,
	"y":      KeyYank,
	"/":      KeySearch,
	"f":      KeyFilter,
	"H":      KeyHideSolved,
	"L":      KeyFavorites,
	"S":      KeySettings,
	"?":      KeyHelp,
	"tab":    KeyTab,
	"b":      KeyBack,
	"esc":    KeyBack,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyTop: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	KeyBottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	KeyHalfDown: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "half page down"),
	),
	KeyHalfUp: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "half page up"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "view"),
	),
	KeyScaffold: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in editor"),
	),
	KeyAddFavorite: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add to list"),
	),
	KeyRun: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "run"),
	),
	KeySubmit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "submit"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank URL"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	KeyHideSolved: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "hide solved"),
	),
	KeyFavorites: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "lists"),
	),
	KeySettings: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "settings"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	KeyBack: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b/esc", "back"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
