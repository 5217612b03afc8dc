package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/profile"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Usage profile helpers"}
	cmd.AddCommand(newProfileInitCmd(), newProfileFieldsCmd())
	return cmd
}

func newProfileInitCmd() *cobra.Command {
	var (
		force  bool
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write a starter usage profile holding the default values",
		Long: `Writes the built-in default profile as a document you can edit.
The format follows the file extension (.yaml, .yml or .json). Without FILE,
or with -, the profile is written to stdout in --format.`,
		Example: `  footprint profile init me.yaml
  footprint profile init --format json > me.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}
			return runProfileInit(cmd, path, name, format, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&format, "format", string(profile.FormatYAML), "format when writing to stdout: yaml or json")
	cmd.Flags().StringVar(&name, "name", "", "profile name (default: the file name)")

	return cmd
}

func runProfileInit(cmd *cobra.Command, path, name, format string, force bool) error {
	if path == stdinPath {
		f := profile.Format(strings.ToLower(format))
		return profile.Encode(cmd.OutOrStdout(), profile.ToDocument(name, footprint.DefaultProfile()), f)
	}

	f, err := profile.FormatFromPath(path)
	if err != nil {
		return err
	}
	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.New("profile file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access profile path %s: %w", path, statErr)
		}
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var buf bytes.Buffer
	if err = profile.Encode(&buf, profile.ToDocument(name, footprint.DefaultProfile()), f); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}

	logger.Debug().Ctx(cmd.Context()).Str("path", path).Msg("profile written")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\n", path)
	return err
}

func newProfileFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the usage keys accepted in profiles and by --set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, key := range profile.FieldNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
