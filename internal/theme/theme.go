package theme

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// Core colors
	Primary lipgloss.Color
	Accent  lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// UI element colors
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color

	// Bars
	MenuBar     lipgloss.Color
	MenuBarText lipgloss.Color
	StatusBar   lipgloss.Color
	StatusText  lipgloss.Color

	// Semantic colors
	Secure  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Tab strip
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
}

var themes = map[string]Theme{
	"default": Default,
	"classic": Classic,
	"gruvbox": Gruvbox,
	"nord":    Nord,
	"dracula": Dracula,
}

var Default = Theme{
	Name:        "default",
	Primary:     lipgloss.Color("#7C3AED"),
	Accent:      lipgloss.Color("#F59E0B"),
	Text:        lipgloss.Color("#E2E8F0"),
	TextDim:     lipgloss.Color("#64748B"),
	TextBright:  lipgloss.Color("#F8FAFC"),
	Background:  lipgloss.Color("#0F172A"),
	Surface:     lipgloss.Color("#1E293B"),
	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#7C3AED"),
	Selection:   lipgloss.Color("#334155"),
	MenuBar:     lipgloss.Color("#1E293B"),
	MenuBarText: lipgloss.Color("#E2E8F0"),
	StatusBar:   lipgloss.Color("#7C3AED"),
	StatusText:  lipgloss.Color("#F8FAFC"),
	Secure:      lipgloss.Color("#22C55E"),
	Error:       lipgloss.Color("#EF4444"),
	Warning:     lipgloss.Color("#F59E0B"),
	TabActive:   lipgloss.Color("#7C3AED"),
	TabInactive: lipgloss.Color("#475569"),
}

// Classic mirrors the plain white menu and blue status line of older
// text-mode shells.
var Classic = Theme{
	Name:        "classic",
	Primary:     lipgloss.Color("4"),
	Accent:      lipgloss.Color("3"),
	Text:        lipgloss.Color("7"),
	TextDim:     lipgloss.Color("8"),
	TextBright:  lipgloss.Color("15"),
	Background:  lipgloss.Color("0"),
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("7"),
	BorderFocus: lipgloss.Color("3"),
	Selection:   lipgloss.Color("1"),
	MenuBar:     lipgloss.Color("7"),
	MenuBarText: lipgloss.Color("0"),
	StatusBar:   lipgloss.Color("4"),
	StatusText:  lipgloss.Color("15"),
	Secure:      lipgloss.Color("2"),
	Error:       lipgloss.Color("1"),
	Warning:     lipgloss.Color("3"),
	TabActive:   lipgloss.Color("3"),
	TabInactive: lipgloss.Color("8"),
}

var Gruvbox = Theme{
	Name:        "gruvbox",
	Primary:     lipgloss.Color("#D65D0E"),
	Accent:      lipgloss.Color("#D79921"),
	Text:        lipgloss.Color("#EBDBB2"),
	TextDim:     lipgloss.Color("#928374"),
	TextBright:  lipgloss.Color("#FBF1C7"),
	Background:  lipgloss.Color("#282828"),
	Surface:     lipgloss.Color("#3C3836"),
	Border:      lipgloss.Color("#504945"),
	BorderFocus: lipgloss.Color("#D65D0E"),
	Selection:   lipgloss.Color("#504945"),
	MenuBar:     lipgloss.Color("#3C3836"),
	MenuBarText: lipgloss.Color("#EBDBB2"),
	StatusBar:   lipgloss.Color("#458588"),
	StatusText:  lipgloss.Color("#FBF1C7"),
	Secure:      lipgloss.Color("#B8BB26"),
	Error:       lipgloss.Color("#FB4934"),
	Warning:     lipgloss.Color("#FABD2F"),
	TabActive:   lipgloss.Color("#D65D0E"),
	TabInactive: lipgloss.Color("#665C54"),
}

var Nord = Theme{
	Name:        "nord",
	Primary:     lipgloss.Color("#88C0D0"),
	Accent:      lipgloss.Color("#EBCB8B"),
	Text:        lipgloss.Color("#ECEFF4"),
	TextDim:     lipgloss.Color("#4C566A"),
	TextBright:  lipgloss.Color("#ECEFF4"),
	Background:  lipgloss.Color("#2E3440"),
	Surface:     lipgloss.Color("#3B4252"),
	Border:      lipgloss.Color("#434C5E"),
	BorderFocus: lipgloss.Color("#88C0D0"),
	Selection:   lipgloss.Color("#434C5E"),
	MenuBar:     lipgloss.Color("#3B4252"),
	MenuBarText: lipgloss.Color("#ECEFF4"),
	StatusBar:   lipgloss.Color("#5E81AC"),
	StatusText:  lipgloss.Color("#ECEFF4"),
	Secure:      lipgloss.Color("#A3BE8C"),
	Error:       lipgloss.Color("#BF616A"),
	Warning:     lipgloss.Color("#EBCB8B"),
	TabActive:   lipgloss.Color("#88C0D0"),
	TabInactive: lipgloss.Color("#4C566A"),
}

var Dracula = Theme{
	Name:        "dracula",
	Primary:     lipgloss.Color("#BD93F9"),
	Accent:      lipgloss.Color("#F1FA8C"),
	Text:        lipgloss.Color("#F8F8F2"),
	TextDim:     lipgloss.Color("#6272A4"),
	TextBright:  lipgloss.Color("#F8F8F2"),
	Background:  lipgloss.Color("#282A36"),
	Surface:     lipgloss.Color("#44475A"),
	Border:      lipgloss.Color("#6272A4"),
	BorderFocus: lipgloss.Color("#BD93F9"),
	Selection:   lipgloss.Color("#44475A"),
	MenuBar:     lipgloss.Color("#44475A"),
	MenuBarText: lipgloss.Color("#F8F8F2"),
	StatusBar:   lipgloss.Color("#6272A4"),
	StatusText:  lipgloss.Color("#F8F8F2"),
	Secure:      lipgloss.Color("#50FA7B"),
	Error:       lipgloss.Color("#FF5555"),
	Warning:     lipgloss.Color("#F1FA8C"),
	TabActive:   lipgloss.Color("#BD93F9"),
	TabInactive: lipgloss.Color("#6272A4"),
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// List returns all available theme names, sorted.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
