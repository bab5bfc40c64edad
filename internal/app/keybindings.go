package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidyasagar/dive/internal/ui"
)

// KeyMap defines the global keybindings for dive. They apply when no
// focused widget consumes the key.
type KeyMap struct {
	// Tabs
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	OpenURL   key.Binding
	RenameTab key.Binding
	CopyURL   key.Binding

	// Content
	ScrollDown key.Binding
	ScrollUp   key.Binding
	PageDown   key.Binding
	PageUp     key.Binding

	// Overlays
	Help      key.Binding
	TabList   key.Binding
	Log       key.Binding
	History   key.Binding
	Bookmarks key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "prev tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("alt+0", "alt+1", "alt+2", "alt+3", "alt+4",
				"alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("Alt+0-9", "jump to tab"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+n", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("Ctrl+w", "close tab"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("Ctrl+g", "open URL"),
		),
		RenameTab: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+r", "rename tab"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+y", "copy URL"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		TabList: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "tab list"),
		),
		Log: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("F6", "log"),
		),
		History: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("F7", "history"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("F8", "bookmarks"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("Ctrl+q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.OpenURL, k.NewTab, k.CloseTab, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := k.Groups()
	out := make([][]key.Binding, len(groups))
	for i, g := range groups {
		out[i] = g.Bindings
	}
	return out
}

// Groups returns the bindings as named columns for the help overlay.
func (k KeyMap) Groups() []ui.KeyGroup {
	return []ui.KeyGroup{
		{Name: "Tabs", Bindings: []key.Binding{
			k.NextTab, k.PrevTab, k.JumpTab, k.NewTab, k.CloseTab, k.RenameTab,
		}},
		{Name: "Page", Bindings: []key.Binding{
			k.OpenURL, k.CopyURL, k.ScrollDown, k.ScrollUp, k.PageDown, k.PageUp,
		}},
		{Name: "Panels", Bindings: []key.Binding{
			k.Help, k.TabList, k.Bookmarks, k.History, k.Log, k.Quit,
		}},
	}
}
