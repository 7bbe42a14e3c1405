package testrunner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Suite is one test suite that can be executed.
type Suite interface {
	Name() string
	Run(ctx context.Context, verbose bool) (*Output, error)
}

// Output captures the result of a suite execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported suite identifiers.
const (
	SuiteGo = "go"
	SuiteJS = "js"
)

// CommandSuite runs an external command and treats exit code 0 as success.
type CommandSuite struct {
	SuiteName  string
	Bin        string
	Args       []string
	VerboseArg string
	Dir        string

	// Preflight runs before the command; an error fails the suite.
	Preflight func(ctx context.Context) error

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Name returns the suite identifier.
func (s *CommandSuite) Name() string { return s.SuiteName }

// Run executes the command in Dir, streaming its output to the configured
// writers while also capturing it.
func (s *CommandSuite) Run(ctx context.Context, verbose bool) (*Output, error) {
	if s.Preflight != nil {
		if err := s.Preflight(ctx); err != nil {
			return nil, err
		}
	}

	bin, err := exec.LookPath(s.Bin)
	if err != nil {
		return nil, fmt.Errorf("%s suite requires %s: %w", s.SuiteName, s.Bin, err)
	}

	args := append([]string{}, s.Args...)
	if verbose && s.VerboseArg != "" {
		args = append(args, s.VerboseArg)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = s.Dir

	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s suite: %w", s.SuiteName, err)
	}
	return output, nil
}

// NewGoSuite returns the suite that runs `go test ./...` in dir.
func NewGoSuite(dir string) *CommandSuite {
	return &CommandSuite{
		SuiteName:  SuiteGo,
		Bin:        "go",
		Args:       []string{"test", "./..."},
		VerboseArg: "-v",
		Dir:        dir,
	}
}

// NewJSSuite returns the suite that runs `npm test` in dir after checking
// the installed Node.js against nodeConstraint.
func NewJSSuite(dir, nodeConstraint string) *CommandSuite {
	return &CommandSuite{
		SuiteName:  SuiteJS,
		Bin:        "npm",
		Args:       []string{"test"},
		VerboseArg: "--verbose",
		Dir:        dir,
		Preflight: func(ctx context.Context) error {
			return CheckNode(ctx, nodeConstraint)
		},
	}
}

// DispatchSuite returns the suite for a suite identifier.
func DispatchSuite(name, dir, nodeConstraint string) (Suite, error) {
	switch name {
	case SuiteGo:
		return NewGoSuite(dir), nil
	case SuiteJS:
		return NewJSSuite(dir, nodeConstraint), nil
	default:
		return nil, fmt.Errorf("unknown suite %q: supported suites are %q and %q", name, SuiteGo, SuiteJS)
	}
}
