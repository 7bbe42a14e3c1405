// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	TeamName    string `yaml:"team_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "arcadehub",
			DisplayName: "Arcade Hub",
			Description: "Developer tooling for the Arcade Hub game site",
			HomeDir:     ".arcadehub",
			EnvPrefix:   "ARCADEHUB",
			TeamName:    "Arcade Hub Team",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "arcadehub").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable site name (e.g., "Arcade Hub").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".arcadehub").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ARCADEHUB").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TeamName returns the default author credited on registry entries.
func TeamName() string { load(); return defaults.TeamName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "ARCADEHUB_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
