package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kudoshq/kudoticker/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify kudoticker configuration",
	Long: `View or modify kudoticker configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  kudoticker config set api.base_url https://api.rewards.example.com
  kudoticker config set feed.region_code BD
  kudoticker config set ticker.speed 2.5

Valid keys:
  api.base_url         - Rewards API base URL
  api.access_token     - API credential (prefer KUDOTICKER_API_ACCESS_TOKEN)
  api.timeout_seconds  - Per-request HTTP timeout in seconds
  api.page_size        - Records requested per page
  api.max_pages        - Pagination safety cap
  feed.region_code     - Two-letter receiver country code
  feed.lookback_days   - How many days of recognitions to load
  ticker.speed         - Scroll speed in rows per second
  ticker.frame_interval_ms - Animation frame interval in milliseconds
  logging.enabled      - Enable file logging (true/false)
  logging.level        - Log level: debug, info, warn, error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/kudoticker/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  access_token: %s\n", maskToken(cfg.API.AccessToken))
	fmt.Fprintf(out, "  timeout_seconds: %d\n", cfg.API.TimeoutSeconds)
	fmt.Fprintf(out, "  page_size: %d\n", cfg.API.PageSize)
	fmt.Fprintf(out, "  max_pages: %d\n", cfg.API.MaxPages)

	fmt.Fprintln(out, "feed:")
	fmt.Fprintf(out, "  region_code: %s\n", cfg.Feed.RegionCode)
	fmt.Fprintf(out, "  lookback_days: %d\n", cfg.Feed.LookbackDays)

	fmt.Fprintln(out, "ticker:")
	fmt.Fprintf(out, "  speed: %g\n", cfg.Ticker.Speed)
	fmt.Fprintf(out, "  frame_interval_ms: %d\n", cfg.Ticker.FrameIntervalMs)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	return nil
}

// maskToken hides all but the last four characters of a credential.
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"api.base_url":             "string",
		"api.access_token":         "string",
		"api.timeout_seconds":      "int",
		"api.page_size":            "int",
		"api.max_pages":            "int",
		"feed.region_code":         "string",
		"feed.lookback_days":       "int",
		"ticker.speed":             "float",
		"ticker.frame_interval_ms": "int",
		"logging.enabled":          "bool",
		"logging.level":            "string",
		"logging.max_size_mb":      "int",
		"logging.max_backups":      "int",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'kudoticker config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	case "float":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected number", key)
		}
		if floatVal <= 0 {
			return fmt.Errorf("invalid value for %s: must be positive", key)
		}
		typedValue = floatVal
	}

	// Validate the full configuration with the new value applied before
	// persisting it.
	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'kudoticker config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Kudoticker Configuration

# Rewards API access
api:
  # Base URL of the rewards API
  base_url: ""
  # API credential. Prefer the KUDOTICKER_API_ACCESS_TOKEN environment
  # variable over storing the token here.
  access_token: ""
  # Per-request HTTP timeout in seconds
  timeout_seconds: 15
  # Records requested per page
  page_size: 100
  # Safety cap on the pagination loop
  max_pages: 50

# Feed filtering
feed:
  # Two-letter country code of recognition receivers to show
  region_code: BD
  # How many days of recognitions to load
  lookback_days: 3

# Scrolling animation
ticker:
  # Scroll speed in rows per second
  speed: 2.0
  # Animation frame interval in milliseconds
  frame_interval_ms: 100

# Debug logging (written to the config directory, never to the screen)
logging:
  enabled: true
  # Log level: debug, info, warn, error
  level: info
  # Log file size in megabytes before rotation
  max_size_mb: 10
  # Number of rotated log files to keep
  max_backups: 3
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize kudoticker's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/kudoticker/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: KUDOTICKER_* (e.g., KUDOTICKER_API_ACCESS_TOKEN)")

	return nil
}
