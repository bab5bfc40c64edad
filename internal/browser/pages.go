package browser

// InternalScheme addresses pages built into the application.
const InternalScheme = "dive"

const (
	// PageNotFound is shown for unknown internal pages.
	PageNotFound = "Page not found"
	// UnknownProtocol is shown for URLs whose scheme cannot be fetched.
	UnknownProtocol = "Unknown protocol"
)

var builtinPages = map[string]string{
	"blank": "",
	"help": `# Dive help

Dive is a text-mode browser shell. Every page lives in its own tab.

## Tabs

| Key | Action |
| --- | --- |
| Tab / Shift+Tab | next / previous tab |
| Alt+0 … Alt+9 | jump to tab by position |
| Ctrl+N | new blank tab |
| Ctrl+G | open a URL in a new tab |
| Ctrl+R | rename the current tab |
| Ctrl+W | close the current tab |
| Ctrl+Y | copy the current URL |
| Up / Down / PgUp / PgDn | scroll |

## Panels

| Key | Panel |
| --- | --- |
| F1 | key bindings |
| F2 | tab list |
| F6 | log |
| F7 | history |
| F8 | bookmarks |

Esc closes a panel. Ctrl+Q quits.
`,
	"credits": `# Credits

Dive is built with Bubble Tea, Lip Gloss, Glamour, go-readability,
goquery and SQLite.

Thanks to everyone who writes terminal software.
`,
	"settings": `# Settings

Settings are read from ` + "`config.yaml`" + ` in the dive config directory.
`,
}
