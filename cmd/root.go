package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck/internal/bookmarks"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/corpus"
	"github.com/promptdeck/promptdeck/internal/discover"
	"github.com/promptdeck/promptdeck/internal/engagement"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/tui"
	"github.com/promptdeck/promptdeck/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "TUI browser for the PromptDeck content library",
	Long:  "promptdeck searches, ranks, and saves articles from the PromptDeck prompt-marketplace library in a clean terminal dashboard.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log best-effort failures to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(readingCmd)
	rootCmd.AddCommand(corpusCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptdeck %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(context.Background(), version); r != nil {
			fmt.Printf("A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// env wires the engines and store the way every command needs them.
type env struct {
	cfg      *config.Config
	lib      *corpus.Corpus
	searcher *search.Engine
	disc     *discover.Engine
	store    *bookmarks.Store

	close func() error
}

func buildEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lib, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	signals, err := engagement.LoadTable(cfg.Signals)
	if err != nil {
		return nil, fmt.Errorf("loading signals: %w", err)
	}

	e := &env{
		cfg:      cfg,
		lib:      lib,
		searcher: search.New(lib),
		disc:     discover.New(lib, signals),
		close:    func() error { return nil },
	}

	var persist bookmarks.Persistence
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := bookmarks.OpenSQLite(config.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("opening reading list db: %w", err)
		}
		persist = db
		e.close = db.Close
	default:
		persist = bookmarks.NewFile(config.ReadingListPath())
	}

	e.store = bookmarks.NewStore(persist, bookmarks.WithLogger(newLogger()))
	return e, nil
}

func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := buildEnv()
	if err != nil {
		return err
	}
	defer e.close()

	return tui.Run(tui.RunOpts{
		Cfg:    e.cfg,
		Lib:    e.lib,
		Engine: e.searcher,
		Disc:   e.disc,
		Store:  e.store,
	})
}
