package cli

import (
	"errors"
	"fmt"

	"github.com/arcade-hub/arcadehub/internal/config"
	"github.com/arcade-hub/arcadehub/internal/testrunner"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/cobra"
)

var (
	testGoOnly  bool
	testJSOnly  bool
	testVerbose bool
)

// newSuite builds the suite for an identifier. Replaced in tests.
var newSuite = testrunner.DispatchSuite

func init() {
	testCmd.Flags().BoolVar(&testGoOnly, "go-only", false, "Run only the Go tests")
	testCmd.Flags().BoolVar(&testJSOnly, "js-only", false, "Run only the JavaScript tests")
	testCmd.Flags().BoolVarP(&testVerbose, "verbose", "v", false, "Increase test output verbosity")
	testCmd.Flags().BoolVar(&testGoOnly, "python-only", false, "Run only the Go tests")
	_ = testCmd.Flags().MarkDeprecated("python-only", "use --go-only")
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the tooling and site test suites",
	Long: `Run the Go test suite (go test ./...) and the JavaScript test suite
(npm test) from the site root. A failing suite does not stop the next one.
The command fails unless every selected suite passes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := site()
		var suites []testrunner.Suite
		for _, name := range testrunner.Select(testGoOnly, testJSOnly) {
			suite, err := newSuite(name, s.Root, config.Get(config.KeyNodeConstraint))
			if err != nil {
				return err
			}
			suites = append(suites, suite)
		}

		out := cmd.OutOrStdout()
		runner := &testrunner.Runner{Suites: suites, Out: out, Logger: logger}
		report := runner.Run(cmd.Context(), testVerbose)

		fmt.Fprintln(out)
		var failed []string
		for _, res := range report.Results {
			if res.Passed {
				ui.Success(out, "%s tests passed", res.Name)
				continue
			}
			failed = append(failed, res.Name)
			ui.Failure(out, "%s tests failed (exit code %d)", res.Name, res.ExitCode)
		}
		if !report.Passed() {
			return fmt.Errorf("%w: %v", errTestsFailed, failed)
		}
		return nil
	},
}

var errTestsFailed = errors.New("test suites failed")
