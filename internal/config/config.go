package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcade-hub/arcadehub/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRoot           = "root"
	KeyGamesDir       = "site.games_dir"
	KeyImagesDir      = "site.images_dir"
	KeyRegistryFile   = "site.registry_file"
	KeyAuthor         = "registry.author"
	KeyProposalsDir   = "idea.proposals_dir"
	KeyNodeConstraint = "test.node_constraint"
)

// Dir returns the path to the arcadehub config directory (~/.arcadehub/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.arcadehub/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// setDefaults registers the built-in value for every known key.
func setDefaults() {
	viper.SetDefault(KeyRoot, ".")
	viper.SetDefault(KeyGamesDir, "games")
	viper.SetDefault(KeyImagesDir, "images")
	viper.SetDefault(KeyRegistryFile, filepath.Join("js", "main.js"))
	viper.SetDefault(KeyAuthor, branding.TeamName())
	viper.SetDefault(KeyProposalsDir, "proposals")
	viper.SetDefault(KeyNodeConstraint, ">= 16.0.0")
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with dots replaced, e.g. site.games_dir is
// read from ARCADEHUB_SITE_GAMES_DIR. A missing config file is not an error;
// an unreadable or malformed one is.
func Load() error {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// BindFlag makes flag the highest-priority source for key once it is set
// on the command line.
func BindFlag(key string, flag *pflag.Flag) error {
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding flag for %q: %w", key, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
