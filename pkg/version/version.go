// Package version holds the build version of tablekit.
package version

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Set via -ldflags at build time.
//
//nolint:gochecknoglobals // Build metadata injected by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// ErrInvalidVersion is returned when the build version is not semver.
var ErrInvalidVersion = errors.New("invalid version")

// GetVersion returns the raw build version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build date.
func GetBuildDate() string {
	return buildDate
}

// Parse validates v as a semantic version. A leading "v" is accepted.
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.StrictNewVersion(trimV(v))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidVersion, v, err)
	}
	return parsed, nil
}

func trimV(v string) string {
	if len(v) > 1 && v[0] == 'v' {
		return v[1:]
	}
	return v
}

// String returns the version line printed by `tablekit version`.
func String() (string, error) {
	v, err := Parse(version)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tablekit %s (commit %s, built %s)", v.String(), gitCommit, buildDate), nil
}
