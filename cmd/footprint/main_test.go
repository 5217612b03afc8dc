package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "footprint", root.Name())
		assert.Equal(t, version.Describe(version.GetVersion()), root.Version)

		for _, name := range []string{"estimate", "compare", "classify", "coefficients", "profile", "config"} {
			sub, _, err := root.Find([]string{name})
			require.NoError(t, err, name)
			assert.Equal(t, name, sub.Name())
		}
	})
}

func TestExtractTierExitCode(t *testing.T) {
	tierErr := &cli.TierExitError{
		ExitCode:  cli.TierExitCode,
		Tier:      footprint.TierVeryHeavy,
		Threshold: footprint.TierHeavy,
	}

	tests := []struct {
		name         string
		err          error
		wantExitCode int
	}{
		{"nil error returns 0", nil, 0},
		{"TierExitError", tierErr, 2},
		{"custom exit code", &cli.TierExitError{ExitCode: 42}, 42},
		{"wrapped TierExitError", errors.Join(errors.New("outer"), tierErr), 2},
		{"generic error", errors.New("generic error"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExitCode, extractTierExitCode(tt.err))
		})
	}
}

func TestTierExitError_Message(t *testing.T) {
	err := &cli.TierExitError{ExitCode: 2, Tier: footprint.TierVeryHeavy, Threshold: footprint.TierHeavy}
	assert.Equal(t, "consumption tier very-heavy is at or above heavy", err.Error())
}
