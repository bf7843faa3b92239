package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/app"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/config"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/history"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/logger"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/session"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/storage"
)

const flushTimeout = 5 * time.Second

type rootFlags struct {
	config string // Path to the YAML configuration file
}

// runtime is everything a command needs once configuration is loaded.
type runtime struct {
	cfg     *config.Config
	kv      storage.KV
	store   *history.Store
	session *session.Session
	// loadErr is a non-fatal startup problem such as corrupt history.
	loadErr error
}

func newRootCmd() *cobra.Command {
	flags := new(rootFlags)

	rootCmd := &cobra.Command{
		Use:           "calc-wizard",
		Short:         "Terminal calculator with dated history and notes",
		Version:       getDetailedVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.Close()
			return runTUI(rt)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "path to the configuration file (default ~/.calc-wizard/config.yaml)")

	rootCmd.AddCommand(
		newEvalCmd(flags),
		newHistoryCmd(flags),
		newNoteCmd(flags),
	)
	return rootCmd
}

// bootstrap loads configuration, starts logging and opens the history.
func bootstrap(cmd *cobra.Command, flags *rootFlags) (*runtime, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load(".env")

	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	if _, err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logger: %v\n", err)
	}
	logger.L().Info("starting",
		zap.String("command", cmd.Name()),
		zap.String("config", cfg.File),
		zap.String("backend", cfg.Storage.Backend))

	kv, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		logger.Close()
		return nil, err
	}

	rt := &runtime{cfg: cfg, kv: kv}
	rt.store = history.NewStore(kv, cfg.Storage.Key)
	if err := rt.store.Load(cmd.Context()); err != nil {
		// Neither case is fatal: the session starts with an empty history.
		switch {
		case errors.Is(err, history.ErrCorrupt):
			rt.loadErr = fmt.Errorf("history could not be read and was reset: %w", err)
		default:
			rt.loadErr = fmt.Errorf("history could not be loaded, starting empty: %w", err)
		}
		logger.L().Warn("history load failed", zap.String("key", cfg.Storage.Key), zap.Error(err))
	}

	rt.session = session.New(rt.store, session.WithDisplayLayout(cfg.Display.DateLayout))
	return rt, nil
}

// Close releases the store and flushes the log.
func (r *runtime) Close() {
	if err := r.kv.Close(); err != nil {
		logger.Error("failed to close storage: %v", err)
	}
	logger.Close()
}

func runTUI(rt *runtime) error {
	p := tea.NewProgram(
		app.NewModel(rt.session, app.ParseTheme(rt.cfg.Display.Theme), time.Now(), rt.loadErr),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	_, runErr := p.Run()

	// A save issued by the last key press may not have finished yet.
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := rt.store.Flush(ctx); err != nil {
		logger.Error("failed to save history on exit: %v", err)
		if runErr == nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("error running application: %w", runErr)
	}
	return nil
}

func warnLoad(cmd *cobra.Command, rt *runtime) {
	if rt.loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", rt.loadErr)
	}
}
