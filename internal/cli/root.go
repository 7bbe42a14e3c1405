package cli

import (
	"os"
	"time"

	"github.com/arcade-hub/arcadehub/internal/branding"
	"github.com/arcade-hub/arcadehub/internal/config"
	"github.com/arcade-hub/arcadehub/internal/logging"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	siteRoot string
	debug    bool
	noColor  bool
)

// Shared command dependencies. Tests swap these out.
var (
	siteFs = afero.NewOsFs()
	now    = time.Now
	logger = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&siteRoot, "root", ".", "Arcade Hub site root (env "+branding.EnvVar(config.KeyRoot)+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` developer tooling: scaffold new browser games, register them in the
site's game registry, draft game proposals, and run the test suites.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetNoColor(noColor || os.Getenv("NO_COLOR") != "")
		logger = logging.MustNew(debug)
		if err := config.Load(); err != nil {
			return err
		}
		return config.BindFlag(config.KeyRoot, rootCmd.PersistentFlags().Lookup("root"))
	},
}

// site resolves the configured layout against the site root. --root wins
// over ARCADEHUB_ROOT, which wins over the root setting.
func site() config.Site {
	return config.SiteAt(config.Get(config.KeyRoot))
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		ui.Failure(os.Stderr, "Error: %v", err)
	}
	_ = logger.Sync()
	return err
}
