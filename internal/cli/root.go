package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// interactiveAvailable reports whether the TUI can take over the terminal.
// Replaced in tests.
//
//nolint:gochecknoglobals // Test seam.
var interactiveAvailable = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the footprint CLI.
// It loads configuration, wires up logging and tracing, and registers the
// estimate, compare, classify, coefficients, profile and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
		projectDir string
	)

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Estimate the data volume and CO2 of your digital habits",
		Long: `footprint estimates how much data your daily online activity moves and
the CO2 that traffic emits, from a usage profile of searches, streaming,
messaging, calls and connected devices.`,
		Version:      version.Describe(ver),
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				cwd = ""
			}
			resolved := config.ResolveProjectDir(cmd.Context(), projectDir, cwd)
			config.SetResolvedProjectDir(resolved)

			cfg, err := config.Load(configPath, resolved)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $FOOTPRINT_HOME/config.yaml)")
	cmd.PersistentFlags().
		StringVar(&projectDir, "project-dir", "", "project directory holding .footprint/config.yaml (default: walk up from cwd)")
	cmd.AddCommand(
		newEstimateCmd(), newCompareCmd(), newClassifyCmd(),
		newCoefficientsCmd(), newProfileCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate the built-in default profile
  footprint estimate

  # Estimate a profile file with one override
  footprint estimate --profile me.yaml --set youtube_hours=4

  # Explore a profile interactively
  footprint estimate --profile me.yaml --interactive

  # Compare household members
  footprint compare alice.yaml bob.yaml

  # Fail CI when a profile reaches the heavy tier
  footprint estimate --profile team.yaml --fail-on-tier heavy

  # Write a starter profile
  footprint profile init me.yaml`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
