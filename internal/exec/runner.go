// Package exec provides a stub-friendly interface for running the host
// package manager.
package exec

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	// Dir is the working directory, usually the project root.
	Dir string

	// Env is an overlay of extra environment variables.
	Env map[string]string
}

// CommandRunner runs external commands. A non-zero exit code is data in the
// Result, not a Go error; errors are reserved for failures to execute at all
// (binary not found, context canceled).
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
}

// RealRunner is the production CommandRunner over os/exec.
type RealRunner struct{}

func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
