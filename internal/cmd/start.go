package cmd

import (
	"fmt"
	"os"

	"github.com/kudoshq/kudoticker/internal/config"
	"github.com/kudoshq/kudoticker/internal/logging"
	"github.com/kudoshq/kudoticker/internal/recognition"
	"github.com/kudoshq/kudoticker/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the recognition ticker",
	Long: `Start the full-screen recognition ticker.
This loads the recognition feed from the rewards API and scrolls it
continuously until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The ticker takes over the whole screen; refuse to start without one.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; the ticker needs one (use 'kudoticker feed' for plain output)")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	loader, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}

	app := tui.New(loader, cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("ticker error: %w", err)
	}

	return nil
}

// newLogger builds the file logger, or a no-op logger when file logging is
// disabled. TUI commands must never log to stderr while the alternate
// screen is active.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.Nop(), nil
	}
	return logging.New(logging.Options{
		Dir:   config.LogDir(),
		Level: cfg.Logging.Level,
		Rotation: logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	})
}

// newLoader builds the rewards API client from the effective configuration.
func newLoader(cfg *config.Config, logger *logging.Logger) (*recognition.Client, error) {
	client, err := recognition.NewClient(
		cfg.API.BaseURL,
		cfg.API.AccessToken,
		recognition.WithTimeout(cfg.API.Timeout()),
		recognition.WithPageSize(cfg.API.PageSize),
		recognition.WithMaxPages(cfg.API.MaxPages),
		recognition.WithRegion(cfg.Feed.RegionCode),
		recognition.WithLookback(cfg.Feed.Lookback()),
		recognition.WithLogger(logger.WithComponent("feed")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed client: %w", err)
	}
	return client, nil
}
