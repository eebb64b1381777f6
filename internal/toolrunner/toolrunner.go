// Package toolrunner wraps external compiler/linter processes: it streams
// their output line by line, classifies each line, and resolves overall
// success from the exit code combined with the warnings-as-errors policy.
// It has no coupling to the serialization core.
package toolrunner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// Severity classifies one line of tool output.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Options configures a run.
type Options struct {
	// WarningsAsErrors makes a run with warnings (and exit code 0) fail.
	WarningsAsErrors bool
	// Out receives the forwarded, colorized lines. Defaults to os.Stderr.
	Out io.Writer
	// Dir is the working directory for the child process.
	Dir string
}

// Result summarizes a completed run.
type Result struct {
	ExitCode int
	Warnings int
	Errors   int
}

// Failed reports whether the run counts as failed under the given options.
func (r Result) Failed(warningsAsErrors bool) bool {
	if r.ExitCode != 0 || r.Errors > 0 {
		return true
	}
	return warningsAsErrors && r.Warnings > 0
}

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// Run executes argv, forwarding and classifying its combined output.
// Cancelling ctx kills the process. The returned error is non-nil when the
// process could not be started or the run failed per Result.Failed.
func Run(ctx context.Context, argv []string, opts Options) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New("toolrunner: empty command line")
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("toolrunner: pipe stdout: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("toolrunner: start %s: %w", argv[0], err)
	}

	var res Result
	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch Classify(line) {
		case SeverityError:
			res.Errors++
			errColor.Fprintln(out, line)
		case SeverityWarning:
			res.Warnings++
			warnColor.Fprintln(out, line)
		default:
			fmt.Fprintln(out, line)
		}
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("toolrunner: wait for %s: %w", argv[0], err)
	}

	if res.Failed(opts.WarningsAsErrors) {
		return res, fmt.Errorf("toolrunner: %s failed (exit %d, %d errors, %d warnings)",
			argv[0], res.ExitCode, res.Errors, res.Warnings)
	}
	return res, nil
}

// Classify labels a single output line. Lines opening with an error or
// warning marker (optionally after a file:line prefix) take that severity;
// everything else is informational.
func Classify(line string) Severity {
	l := strings.ToLower(strings.TrimSpace(line))
	if i := strings.Index(l, ": "); i >= 0 && !strings.HasPrefix(l, "error") && !strings.HasPrefix(l, "warning") {
		l = l[i+2:]
	}
	switch {
	case strings.HasPrefix(l, "error"):
		return SeverityError
	case strings.HasPrefix(l, "warning"):
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
