package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/revise/internal/clock"
	"github.com/abhisek/revise/internal/logging"
	"github.com/abhisek/revise/internal/problems"
	"github.com/abhisek/revise/internal/store"
)

// NewRootCmd builds the revise command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "revise",
		Short: "Track practice problems, revision streaks and solution diffs",
		Long: `revise keeps a local log of the problems you practice, the days you
revisit them, and a saved solution you can diff a fresh attempt against.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVISE_DB env var)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides REVISE_LOG_LEVEL env var)")
	root.PersistentFlags().String("log-format", "console", "Log format: console or json")

	root.AddCommand(newAddCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReviseCmd())
	root.AddCommand(newSolutionCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newStreakCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute loads an optional .env file and runs the CLI.
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}
	return NewRootCmd().Execute()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REVISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// app bundles what a command needs to talk to the problem store.
type app struct {
	store    *store.Store
	problems *problems.Service
	logger   *zap.Logger
}

// openApp builds the logger, opens the store and wires the problem service.
func openApp(cmd *cobra.Command) (*app, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("REVISE_LOG_LEVEL")
	}
	format, _ := cmd.Flags().GetString("log-format")

	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))

	svc := problems.NewService(st.KV(), clock.System(time.Local), problems.WithLogger(logger))
	return &app{store: st, problems: svc, logger: logger}, nil
}

func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.store.Close()
}
