package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/vidyasagar/dive/internal/bookmarks"
	"github.com/vidyasagar/dive/internal/browser"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/logging"
	"github.com/vidyasagar/dive/internal/storage"
	"github.com/vidyasagar/dive/internal/tabs"
	"github.com/vidyasagar/dive/internal/ui"
	"github.com/vidyasagar/dive/internal/widget"
)

const (
	blankURL      = "dive://blank"
	newTabTitle   = "New Tab"
	historyLimit  = 200
	defaultHeight = 24
)

// Options configures a Model.
type Options struct {
	Fetcher      tabs.Fetcher
	Bookmarks    *bookmarks.Manager
	History      *storage.HistoryStore // nil disables the history overlay contents
	LogPool      *logging.Pool
	Logger       logr.Logger
	StartURL     string // first tab; empty opens a blank tab
	ShowSplash   bool
	FetchTimeout time.Duration
	Clipboard    func(string) error
	Version      string
}

// Model is the top-level bubbletea model for dive. It owns the widget
// registry, the tabs and the command queue; key handlers only enqueue
// commands and processCommands applies them.
type Model struct {
	widgets   *widget.Manager
	tabs      *tabs.Manager
	bookmarks *bookmarks.Manager
	history   *storage.HistoryStore
	logPool   *logging.Pool
	queue     *command.Queue
	statusBar *ui.StatusBar

	keys      KeyMap
	log       logr.Logger
	clipboard func(string) error
	version   string

	width  int
	height int
}

// New creates the model, registers the base widgets and opens the start
// tab.
func New(opts Options) (Model, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	bm := opts.Bookmarks
	if bm == nil {
		bm = bookmarks.Empty()
	}
	pool := opts.LogPool
	if pool == nil {
		pool = logging.NewPool(0)
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	tm := tabs.NewManager(opts.Fetcher,
		tabs.WithLogger(log.WithName("tabs")),
		tabs.WithFetchTimeout(opts.FetchTimeout),
	)

	m := Model{
		widgets:   widget.NewManager(widget.WithLogger(log.WithName("widgets"))),
		tabs:      tm,
		bookmarks: bm,
		history:   opts.History,
		logPool:   pool,
		queue:     command.NewQueue(),
		statusBar: ui.NewStatusBar(tm),
		keys:      DefaultKeyMap(),
		log:       log,
		clipboard: clip,
		version:   opts.Version,
	}

	base := []*widget.Widget{
		widget.New(widget.MenuBar, widget.PriorityBase, true, ui.NewMenuBar()),
		widget.New(widget.Tabs, widget.PriorityBase, true, ui.NewTabsView(tm)),
		widget.New(widget.StatusBar, widget.PriorityBase, true, m.statusBar),
	}
	if opts.ShowSplash {
		base = append(base, widget.New(widget.Splash, widget.PrioritySplash, false, ui.NewSplash(widget.Splash, opts.Version)))
	}
	for _, w := range base {
		if err := m.widgets.Create(w); err != nil {
			return Model{}, fmt.Errorf("registering %s: %w", w.ID, err)
		}
	}
	if opts.ShowSplash {
		m.widgets.Show(widget.Splash, true)
	}

	// The tab list is never empty.
	if opts.StartURL == "" {
		m.tabs.Open(context.Background(), newTabTitle, blankURL)
	} else {
		m.tabs.Open(context.Background(), titleFor(opts.StartURL), opts.StartURL)
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Always allow Ctrl+C to quit.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.routeKey(msg)
		if m.processCommands() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "\n  Loading dive..."
	}
	s := ui.NewSurface(m.width, m.height)
	m.widgets.Render(s)
	return s.String()
}

// routeKey offers msg to the focused widget, then to the global keys.
func (m *Model) routeKey(msg tea.KeyMsg) {
	if w, ok := m.widgets.Focused(); ok && w.Inner != nil {
		if w.Inner.HandleKey(m.queue, msg) {
			return
		}
	}
	m.handleGlobalKey(msg)
}

// handleGlobalKey processes keys no widget consumed.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.JumpTab):
		if len(msg.Runes) == 1 {
			m.queue.Push(command.SwitchTab{Index: int(msg.Runes[0] - '0')})
		}

	case key.Matches(msg, m.keys.NextTab):
		if m.tabs.Len() > 0 {
			m.setStatus("Switched to tab %d", m.tabs.Next())
		}

	case key.Matches(msg, m.keys.PrevTab):
		if m.tabs.Len() > 0 {
			m.setStatus("Switched to tab %d", m.tabs.Prev())
		}

	case key.Matches(msg, m.keys.NewTab):
		m.queue.Push(command.NewTabURL{Title: newTabTitle, URL: blankURL})

	case key.Matches(msg, m.keys.CloseTab):
		if m.tabs.Len() > 0 {
			m.queue.Push(command.CloseTab{Index: m.tabs.CurrentIndex()})
		}

	case key.Matches(msg, m.keys.OpenURL):
		m.openOverlay(widget.Input, widget.PriorityTop, func() widget.Drawable {
			return ui.NewInput(widget.Input, "Open URL", "https://", "", command.SubmitOpenTab{})
		})

	case key.Matches(msg, m.keys.RenameTab):
		tab, ok := m.tabs.Current()
		if !ok {
			m.setStatus("No tab to rename")
			return
		}
		idx := m.tabs.CurrentIndex()
		m.openOverlay(widget.Input, widget.PriorityTop, func() widget.Drawable {
			return ui.NewInput(widget.Input, fmt.Sprintf("Rename tab %d", idx), "", tab.Name, command.SubmitRenameTab{Index: idx})
		})

	case key.Matches(msg, m.keys.CopyURL):
		m.queue.Push(command.CopyURL{})

	case key.Matches(msg, m.keys.ScrollDown):
		m.queue.Push(command.ScrollTab{Delta: 1})

	case key.Matches(msg, m.keys.ScrollUp):
		m.queue.Push(command.ScrollTab{Delta: -1})

	case key.Matches(msg, m.keys.PageDown):
		m.queue.Push(command.ScrollTab{Delta: m.pageSize()})

	case key.Matches(msg, m.keys.PageUp):
		m.queue.Push(command.ScrollTab{Delta: -m.pageSize()})

	case key.Matches(msg, m.keys.Help):
		m.openOverlay(widget.Help, widget.PriorityOverlay, func() widget.Drawable {
			return ui.NewHelp(widget.Help, m.keys.Groups())
		})

	case key.Matches(msg, m.keys.TabList):
		m.openOverlay(widget.TabList, widget.PriorityOverlay, func() widget.Drawable {
			return ui.NewTabList(widget.TabList, m.tabs)
		})

	case key.Matches(msg, m.keys.Bookmarks):
		m.openOverlay(widget.BookmarkList, widget.PriorityOverlay, func() widget.Drawable {
			return ui.NewBookmarkList(widget.BookmarkList, m.bookmarks)
		})

	case key.Matches(msg, m.keys.History):
		m.openOverlay(widget.History, widget.PriorityOverlay, func() widget.Drawable {
			return ui.NewHistory(widget.History, m.historyEntries())
		})

	case key.Matches(msg, m.keys.Log):
		m.openOverlay(widget.Log, widget.PriorityOverlay, func() widget.Drawable {
			return ui.NewLogView(widget.Log, m.logPool)
		})

	case key.Matches(msg, m.keys.Quit):
		m.queue.Push(command.Quit{})
	}
}

// openOverlay registers the overlay if it does not exist yet and enqueues
// showing it with focus.
func (m *Model) openOverlay(id string, priority uint8, build func() widget.Drawable) {
	if !m.widgets.Has(id) {
		if err := m.widgets.Create(widget.New(id, priority, false, build())); err != nil {
			m.log.Error(err, "creating overlay", "id", id)
			return
		}
	}
	m.queue.Push(command.ShowWidget{ID: id, Focus: true})
}

// processCommands drains the queue, applying each command. Commands
// enqueued while draining are applied in the same pass. It reports whether
// a Quit was seen.
func (m *Model) processCommands() bool {
	quit := false
	for {
		c, ok := m.queue.Pop()
		if !ok {
			return quit
		}
		m.log.V(1).Info("command", "type", fmt.Sprintf("%T", c))

		switch c := c.(type) {
		case command.ShowWidget:
			m.widgets.Show(c.ID, c.Focus)
		case command.HideWidget:
			m.widgets.Hide(c.ID)
		case command.ToggleWidget:
			m.widgets.Toggle(c.ID, c.Focus)
		case command.FocusWidget:
			m.widgets.Focus(c.ID)
		case command.UnfocusWidget:
			m.widgets.Unfocus(c.ID)
		case command.DestroyWidget:
			m.widgets.Destroy(c.ID)

		case command.InputSubmit:
			switch a := c.Action.(type) {
			case command.SubmitRenameTab:
				m.queue.Push(command.RenameTab{Index: a.Index, Name: c.Value})
			case command.SubmitOpenTab:
				m.queue.Push(command.NewTabURL{Title: newTabTitle, URL: browser.NormalizeURL(c.Value)})
			}

		case command.RenameTab:
			if m.tabs.Rename(c.Index, c.Name) {
				m.setStatus("Renamed tab %d to %q", c.Index, c.Name)
			} else {
				m.log.V(1).Info("rename of unknown tab", "index", c.Index)
			}

		case command.NewTabURL:
			idx := m.tabs.Open(context.Background(), c.Title, c.URL)
			m.tabs.Switch(idx)
			m.setStatus("Opened new tab %d", idx)

		case command.CloseTab:
			m.closeTab(c.Index)

		case command.SwitchTab:
			if c.Index < 0 || c.Index >= m.tabs.Len() {
				m.log.V(1).Info("switch to unknown tab", "index", c.Index)
				break
			}
			m.setStatus("Switched to tab %d", m.tabs.Switch(c.Index))

		case command.ScrollTab:
			m.tabs.Scroll(c.Delta)

		case command.CopyURL:
			m.copyURL()

		case command.Quit:
			quit = true
		}
	}
}

func (m *Model) closeTab(idx int) {
	if m.tabs.Len() <= 1 {
		m.setStatus("Can't close last tab")
		return
	}
	if !m.tabs.Close(idx) {
		m.log.V(1).Info("close of unknown tab", "index", idx)
		return
	}
	m.setStatus("Closed tab %d", idx)
}

func (m *Model) copyURL() {
	tab, ok := m.tabs.Current()
	if !ok {
		m.setStatus("No tab open")
		return
	}
	if err := m.clipboard(tab.URL); err != nil {
		m.log.Error(err, "copying URL", "url", tab.URL)
		m.setStatus("Copy failed: %v", err)
		return
	}
	m.setStatus("Copied %s", tab.URL)
}

func (m *Model) setStatus(format string, args ...any) {
	m.statusBar.SetMessage(fmt.Sprintf(format, args...))
}

// historyEntries loads the visit history for the history overlay.
func (m *Model) historyEntries() []storage.HistoryEntry {
	if m.history == nil {
		return nil
	}
	entries, err := m.history.List(historyLimit)
	if err != nil {
		m.log.Error(err, "loading history")
		return nil
	}
	return entries
}

// pageSize is the number of content lines on screen.
func (m *Model) pageSize() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	return max(ui.MainLayout(ui.Rect{Width: m.width, Height: h}).Content.Height-1, 1)
}

// titleFor names the start tab after the URL's host or internal page.
func titleFor(rawURL string) string {
	s := rawURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s, _, _ = strings.Cut(s, "/")
	if s == "" {
		return newTabTitle
	}
	return s
}
