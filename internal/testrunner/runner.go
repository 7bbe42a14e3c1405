package testrunner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// SuiteResult is the outcome of one suite.
type SuiteResult struct {
	Name     string
	Passed   bool
	ExitCode int
	Err      error
}

// Report collects suite results.
type Report struct {
	Results []SuiteResult
}

// Passed is true when every suite that ran passed. An empty report passes.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Runner executes suites in order. A failing suite does not stop later ones.
type Runner struct {
	Suites []Suite
	Out    io.Writer
	Logger *zap.Logger
}

var suiteTitles = map[string]string{
	SuiteGo: "Go",
	SuiteJS: "JavaScript",
}

// Run executes every suite and returns the combined report.
func (r *Runner) Run(ctx context.Context, verbose bool) *Report {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{}
	for _, s := range r.Suites {
		title := suiteTitles[s.Name()]
		if title == "" {
			title = s.Name()
		}
		fmt.Fprintf(r.Out, "\n===== Running %s Tests =====\n", title)

		out, err := s.Run(ctx, verbose)
		res := SuiteResult{Name: s.Name(), Err: err}
		if err == nil {
			res.ExitCode = out.ExitCode
			res.Passed = out.ExitCode == 0
		}
		if err != nil {
			fmt.Fprintf(r.Out, "%s suite could not run: %v\n", title, err)
		}
		logger.Debug("suite finished",
			zap.String("suite", s.Name()),
			zap.Bool("passed", res.Passed),
			zap.Int("exit_code", res.ExitCode),
			zap.Error(err))
		report.Results = append(report.Results, res)
	}
	return report
}

// Select returns the suite identifiers to run for the given flags. With
// neither flag set, both suites run.
func Select(goOnly, jsOnly bool) []string {
	switch {
	case goOnly && !jsOnly:
		return []string{SuiteGo}
	case jsOnly && !goOnly:
		return []string{SuiteJS}
	default:
		return []string{SuiteGo, SuiteJS}
	}
}
