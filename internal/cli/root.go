package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/mynotes/internal/config"
	"github.com/existflow/mynotes/internal/logger"
	"github.com/existflow/mynotes/internal/routing"
	"github.com/existflow/mynotes/internal/tui"
	"github.com/existflow/mynotes/internal/validate"
	"github.com/existflow/mynotes/internal/viewmodel"
	"github.com/existflow/mynotes/internal/watch"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the mynotes command tree
func NewRootCmd() *cobra.Command {
	a := &app{validate: validate.New()}

	var (
		logLevel   string
		logFile    string
		logConsole bool
	)

	rootCmd := &cobra.Command{
		Use:   "mynotes",
		Short: "MyNotes - notes and contacts in your terminal",
		Long: `MyNotes keeps notes and contacts in a local database. Every entry has
a color, can optionally be checked off, and goes to the trash before it is
deleted for good.

Run 'mynotes' without arguments to launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config from file (or defaults if not exists)
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Override with CLI flags if provided
			configChanged := false
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				configChanged = true
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
				configChanged = true
			}
			if cmd.Flags().Changed("log-console") {
				cfg.LogConsole = logConsole
				configChanged = true
			}

			// Save config if changed via CLI flags
			if configChanged {
				if err := cfg.Validate(); err != nil {
					return err
				}
				if err := cfg.Save(); err != nil {
					logger.Warn("Failed to save config", logger.Err(err))
				}
			}
			a.cfg = cfg

			logConfig := logger.DefaultConfig()
			logConfig.Level = logger.ParseLevel(cfg.LogLevel)
			logConfig.FilePath = cfg.LogFile
			logConfig.Console = cfg.LogConsole

			if err := logger.Init(logConfig); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			logger.Info("MyNotes started", logger.F("command", cmd.Name()))
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Info("MyNotes exiting", logger.F("command", cmd.Name()))
			_ = logger.Close()
		},
	}

	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	// Add subcommands
	rootCmd.AddCommand(newNoteCmd(a))
	rootCmd.AddCommand(newContactCmd(a))
	rootCmd.AddCommand(newColorsCmd(a))
	rootCmd.AddCommand(newEmptyTrashCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func (a *app) runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	repo, closeDB, err := a.openRepository(ctx)
	if err != nil {
		logger.Error("Failed to open database", logger.Err(err))
		return err
	}
	defer closeDB()

	log := logger.L()
	loop := viewmodel.NewLoop(ctx)
	vm := viewmodel.ForRepository(repo, routing.New(routing.Notes), loop, log)
	vm.SetNewEntryColor(a.newEntryColor(ctx, repo))

	if a.cfg.WatchChanges {
		w, err := watch.New(a.cfg.DBPath, func(ctx context.Context) {
			if err := repo.Refresh(ctx); err != nil {
				log.Warn("Failed to reload after external change", logger.Err(err))
			}
		}, log)
		if err != nil {
			log.Warn("File watcher unavailable", logger.Err(err))
		} else if err := w.Start(ctx); err != nil {
			log.Warn("File watcher unavailable", logger.Err(err))
			w.Stop()
		} else {
			defer w.Stop()
		}
	}

	logger.Info("Launching TUI")
	m := tui.NewModel(vm, loop, tui.Options{
		ConfirmDelete: a.cfg.ConfirmDelete,
		Refresh:       repo.Refresh,
		Log:           log,
	})
	if err := tui.Run(m, tea.WithAltScreen(), tea.WithContext(ctx)); err != nil {
		logger.Error("TUI error", logger.Err(err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("TUI exited normally")
	return nil
}
