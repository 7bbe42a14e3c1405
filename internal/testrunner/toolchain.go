package testrunner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// nodeVersion reports the output of `node --version`. Replaced in tests.
var nodeVersion = func(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return string(out), nil
}

// CheckNode verifies the installed Node.js satisfies constraint.
func CheckNode(ctx context.Context, constraint string) error {
	if constraint == "" {
		return nil
	}
	version, err := nodeVersion(ctx)
	if err != nil {
		return fmt.Errorf("javascript suite requires Node.js: %w", err)
	}
	return CheckNodeVersion(version, constraint)
}

// CheckNodeVersion reports whether version (e.g. "v20.11.1") satisfies
// constraint (e.g. ">= 16.0.0").
func CheckNodeVersion(version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing node constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing node version %q: %w", strings.TrimSpace(version), err)
	}
	if !c.Check(v) {
		return fmt.Errorf("node %s does not satisfy %s", v, constraint)
	}
	return nil
}

// parseSemver strips whitespace and a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
