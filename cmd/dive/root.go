package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vidyasagar/dive/internal/app"
	"github.com/vidyasagar/dive/internal/bookmarks"
	"github.com/vidyasagar/dive/internal/browser"
	"github.com/vidyasagar/dive/internal/logging"
	"github.com/vidyasagar/dive/internal/storage"
	"github.com/vidyasagar/dive/internal/theme"
)

var errNotTerminal = errors.New("dive needs an interactive terminal")

type rootOptions struct {
	configPath    string
	themeName     string
	bookmarksFile string
	logFile       string
	debug         bool
	noSplash      bool
	showVersion   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dive [url]",
		Short: "dive - a text-mode browser shell",
		Long: "dive opens pages in tabs inside the terminal. Overlays list tabs,\n" +
			"bookmarks, history and the application log. Press F1 inside dive for\n" +
			"the key bindings.",
		Example: "  dive                          # open the configured homepage\n" +
			"  dive https://example.com      # open a URL\n" +
			"  dive golang.org               # auto-adds https://\n" +
			"  dive --theme nord --no-splash",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "dive %s\n", version)
				return nil
			}
			cfg, startURL, err := prepare(cmd, opts, args)
			if err != nil {
				return err
			}
			return run(cfg, startURL)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to the YAML config file")
	cmd.Flags().StringVar(&opts.themeName, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	cmd.Flags().StringVar(&opts.bookmarksFile, "bookmarks", "", "path to the bookmarks JSON file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noSplash, "no-splash", false, "skip the startup splash")
	cmd.Flags().BoolVar(&opts.showVersion, "version", false, "show version")

	return cmd
}

// prepare loads the config, applies flag overrides and picks the start URL.
func prepare(cmd *cobra.Command, opts *rootOptions, args []string) (*storage.Config, string, error) {
	cfg, err := storage.LoadConfig(opts.configPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = opts.themeName
	}
	if flags.Changed("bookmarks") {
		cfg.BookmarksFile = opts.bookmarksFile
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("no-splash") {
		cfg.ShowSplash = !opts.noSplash
	}

	if !theme.Set(cfg.Theme) {
		return nil, "", fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.List(), ", "))
	}

	startURL := cfg.Homepage
	if len(args) > 0 {
		startURL = browser.NormalizeURL(args[0])
	}
	return cfg, startURL, nil
}

// run starts the TUI session. The alt screen is restored when the program
// exits, however it exits.
func run(cfg *storage.Config, startURL string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	log, pool, closeLog, err := logging.New(logging.Options{
		FilePath:   cfg.LogFile,
		Debug:      cfg.Debug,
		MaxEntries: cfg.LogMaxEntries,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	log.Info("starting", "version", version, "config", cfg.Path())

	bm := bookmarks.NewFromFile(cfg.BookmarksPath(), log.WithName("bookmarks"))

	// History is best-effort.
	var history *storage.HistoryStore
	if dir, err := storage.DataDir(); err != nil {
		log.Error(err, "locating data dir, history disabled")
	} else if db, err := storage.OpenDB(dir); err != nil {
		log.Error(err, "opening history database, history disabled")
	} else {
		defer func() { _ = db.Close() }()
		history = storage.NewHistoryStore(db)
	}

	resolverOpts := []browser.ResolverOption{
		browser.WithLogger(log.WithName("browser")),
		browser.WithCacheSize(cfg.CacheSize),
		browser.WithPage("settings", settingsPage(cfg)),
	}
	if history != nil {
		resolverOpts = append(resolverOpts, browser.WithVisitHook(func(url, title string) {
			if err := history.Add(url, title); err != nil {
				log.Error(err, "recording visit", "url", url)
			}
		}))
	}
	resolver := browser.NewResolver(
		browser.NewFetcher(cfg.FetchTimeout),
		browser.NewMarkdown(glamourStyle(), browser.DefaultWordWrap),
		resolverOpts...,
	)

	m, err := app.New(app.Options{
		Fetcher:      resolver,
		Bookmarks:    bm,
		History:      history,
		LogPool:      pool,
		Logger:       log.WithName("app"),
		StartURL:     startURL,
		ShowSplash:   cfg.ShowSplash,
		FetchTimeout: cfg.FetchTimeout,
		Version:      version,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dive: %w", err)
	}
	log.Info("bye")
	return nil
}

// glamourStyle picks the markdown style before the program owns the
// terminal.
func glamourStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// settingsPage renders the effective configuration as the dive://settings
// page.
func settingsPage(cfg *storage.Config) string {
	var sb strings.Builder
	sb.WriteString("# Settings\n\n")
	if p := cfg.Path(); p != "" {
		fmt.Fprintf(&sb, "Loaded from `%s`.\n\n", p)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(&sb, "Could not encode settings: %v\n", err)
		return sb.String()
	}
	sb.WriteString("```yaml\n")
	sb.Write(out)
	sb.WriteString("```\n")
	return sb.String()
}
