package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/tablekit/internal/config"
	"github.com/rshade/tablekit/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// state is shared by the root command and its subcommands for one execution.
type state struct {
	lookupEnv func(string) (string, bool)
	cfg       *config.Config
}

// NewRootCmd creates the root Cobra command for the tablekit CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult
	st := &state{lookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:          "tablekit",
		Short:        "Render tabular data files as paginated tables",
		Long:         "tablekit: Render YAML and JSON record files as themed, paginated terminal tables",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			st.cfg = cfg

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $TABLEKIT_CONFIG or ~/.tablekit/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newShowCmd(st), NewVersionCmd())

	return cmd
}

const rootCmdExample = `  # Show the first page of a record file
  tablekit show services.yaml

  # Pick and title columns, sort by cost descending
  tablekit show services.yaml --columns name:Service,cost:Cost --sort cost:desc

  # Print page 3 as plain text with 50 records per page
  tablekit show services.yaml --plain --page 3 --page-size 50

  # Export a page as JSON
  tablekit show a.yaml b.json --output json`

// loadConfig loads the global and project configuration, applies
// environment overrides and validates the result.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath(lookupEnv)
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, err := config.LoadWithProject(cmd.Context(), path, wd)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
