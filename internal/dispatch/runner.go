package dispatch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result is the outcome of one command execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a resolved hook command. Implementations capture output
// and report the exit code; returning an error means the command could not
// be started at all.
type Runner interface {
	Run(ctx context.Context, command, dir string) (Result, error)
}

// ShellRunner executes commands through a shell, the way hook authors write
// them (pipes, &&, redirects).
type ShellRunner struct {
	Shell string // defaults to "sh"
}

// Run executes command via `shell -c` in dir, capturing stdout and stderr.
// A non-zero exit is not an error: it is reported through Result.ExitCode.
func (r ShellRunner) Run(ctx context.Context, command, dir string) (Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimRight(stdout.String(), "\n"),
		Stderr: strings.TrimRight(stderr.String(), "\n"),
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.ExitCode = exitCodeTimeout
			if res.Stderr != "" {
				res.Stderr += "\n"
			}
			res.Stderr += "hook timed out"
		}
		return res, nil
	}

	return res, err
}

// exitCodeTimeout marks a hook killed by its timeout. Shells use 124 for
// the same condition (timeout(1)).
const exitCodeTimeout = 124
