// Package version exposes the build version of footprint.
package version

import "github.com/Masterminds/semver/v3"

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/rshade/footprint/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Semver parses v as a semantic version. Returns nil when v is not one.
func Semver(v string) *semver.Version {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil
	}
	return parsed
}

// IsRelease reports whether v is a semantic version without a prerelease tag.
func IsRelease(v string) bool {
	parsed := Semver(v)
	return parsed != nil && parsed.Prerelease() == ""
}

// Describe labels v as a release or a development build, as printed by
// --version.
func Describe(v string) string {
	if IsRelease(v) {
		return v + " (release)"
	}
	return v + " (development build)"
}
