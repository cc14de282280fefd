package ddev

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=runner.go -destination=mocks/runner_mock.go -package=mocks

// Runner spawns one manager CLI invocation and returns its stdout. dir is
// the working directory for the invocation; empty means inherit. Commands
// like exec and the database clients resolve the target project from the
// directory they run in.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// CLIRunner runs the real manager binary.
type CLIRunner struct {
	bin     string
	timeout time.Duration
	logger  *zerolog.Logger
}

func NewCLIRunner(bin string, timeout time.Duration, logger *zerolog.Logger) *CLIRunner {
	return &CLIRunner{
		bin:     bin,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *CLIRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	r.logger.Debug().
		Str("bin", r.bin).
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Msg("CLI invocation finished")

	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		return stdout.Bytes(), fmt.Errorf("%s %s: %w: %s", r.bin, strings.Join(args, " "), err, detail)
	}

	return stdout.Bytes(), nil
}
