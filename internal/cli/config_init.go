package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// When a project .footprint/ directory was resolved (without --global), it
// writes the project overlay config.yaml there. Otherwise, it creates the
// global $FOOTPRINT_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project (a directory tree holding .footprint/, or one named with
--project-dir or FOOTPRINT_PROJECT_DIR), creates the project-local
.footprint/config.yaml. Use --global to initialize the global configuration
even inside a project.`,
		Example: `  # Create global configuration
  footprint config init --global

  # Create project-local configuration for ./
  footprint config init --project-dir .

  # Create configuration, overwriting existing
  footprint config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// initProjectConfig creates project-local config at projectDir/config.yaml.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")

	if err := checkNotExists(configPath, force); err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}

	cfg := config.New()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", configPath)
	return err
}

// initGlobalConfig writes the default configuration to --config, or to
// $FOOTPRINT_HOME/config.yaml when the flag is unset.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	cfg := config.New()
	cfg.SetConfigPath(config.GetGlobalConfig().ConfigPath())

	if err := checkNotExists(cfg.ConfigPath(), force); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration initialized successfully\n")
	_, err := fmt.Fprintf(out, "Configuration file: %s\n", cfg.ConfigPath())
	return err
}

func checkNotExists(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}
