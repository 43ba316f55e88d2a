package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kudoshq/kudoticker/internal/config"
	"github.com/spf13/cobra"
)

var feedJSON bool

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Fetch the recognition feed once and print it",
	Long: `Fetch the recognition feed once and print it to stdout.

Useful for verifying API access and the region filter without starting
the full-screen ticker.`,
	Args: cobra.NoArgs,
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().BoolVar(&feedJSON, "json", false, "print the feed as JSON")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
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

	records, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	if feedJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No recognitions for region %s in the last %d days.\n",
			cfg.Feed.RegionCode, cfg.Feed.LookbackDays)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s → %s  +%d pts\n", rec.Giver.Name, rec.Receiver.Name, rec.Amount)
		if rec.Reason != "" {
			fmt.Fprintf(out, "  %s\n", rec.Reason)
		}
	}
	fmt.Fprintf(out, "\n%d recognitions\n", len(records))

	return nil
}
