// Command footprint estimates the data volume and CO2 of a digital usage
// profile.
package main

import (
	"errors"
	"os"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractTierExitCode maps err to the process exit code: 0 for nil, the
// TierExitError code when one is in the chain, else 1.
func extractTierExitCode(err error) int {
	if err == nil {
		return 0
	}
	var tierErr *cli.TierExitError
	if errors.As(err, &tierErr) {
		return tierErr.ExitCode
	}
	return 1
}

func main() {
	if err := run(); err != nil {
		os.Exit(extractTierExitCode(err))
	}
}
