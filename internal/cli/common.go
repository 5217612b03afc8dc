package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/profile"
	"github.com/rshade/footprint/internal/report"
)

// stdinPath reads a profile from standard input.
const stdinPath = "-"

// defaultProfileName labels the built-in profile in reports.
const defaultProfileName = "default"

// renderOptions resolves --output against the configured default format and
// precision.
func renderOptions(output string) (report.Options, error) {
	if output == "" {
		output = config.GetDefaultOutputFormat()
	}
	format, err := report.ParseFormat(output)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{Format: format, Precision: config.GetGlobalConfig().Output.Precision}, nil
}

// profileOptions resolves whether missing keys take default values.
func profileOptions(noDefaults bool) profile.Options {
	return profile.Options{UseDefaults: config.GetGlobalConfig().Profile.UseDefaults && !noDefaults}
}

// loadProfile loads path, "-" for stdin (YAML or JSON, since JSON is valid
// YAML), or the built-in base profile when path is empty.
func loadProfile(cmd *cobra.Command, path string, opts profile.Options) (profile.Profile, error) {
	ctx := cmd.Context()
	switch path {
	case "":
		return profile.Profile{Name: defaultProfileName, Usage: profile.Base(opts)}, nil
	case stdinPath:
		p, err := profile.Load(ctx, cmd.InOrStdin(), profile.FormatYAML, opts)
		if err != nil {
			return profile.Profile{}, err
		}
		p.Source = stdinPath
		if p.Name == "" {
			p.Name = "stdin"
		}
		return p, nil
	default:
		return profile.LoadFile(ctx, path, opts)
	}
}

// defaultProfilePath is the configured profile.default_path, possibly empty.
func defaultProfilePath() string {
	return config.GetGlobalConfig().Profile.DefaultPath
}
