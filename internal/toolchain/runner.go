// runner.go defines the Runner contract and the local scala-cli runner.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// Runner executes one fragment directory and reports the outcome.
//
// The call blocks until the external run exits; the orchestrator runs
// fragments strictly sequentially, so no run ever overlaps another. There
// is no internal timeout — cancellation, if any, comes from ctx.
type Runner interface {
	// Run executes the code in dir. test selects the toolchain's test
	// mode instead of run mode; it is true when the fragment contains
	// a test-suffixed file. The returned error covers failures to
	// invoke the toolchain at all; a non-zero exit of the toolchain
	// itself is reported through the RunOutcome, not the error.
	Run(ctx context.Context, dir string, test bool) (model.RunOutcome, error)
}

// envBinary is the environment variable overriding the scala-cli binary
// location, checked before PATH lookup.
const envBinary = "SCALA_CLI"

// Locate resolves the scala-cli binary. Resolution order:
//  1. override argument (from configuration), used as-is
//  2. SCALA_CLI environment variable
//  3. PATH lookup of "scala-cli"
//
// Returns a model.CLIError with ExitToolchainNotFound when nothing
// resolves.
func Locate(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv(envBinary); env != "" {
		return env, nil
	}

	path, err := exec.LookPath("scala-cli")
	if err != nil {
		return "", model.WrapCLIError(
			model.ExitToolchainNotFound,
			"scala-cli not found on PATH (set SCALA_CLI or install scala-cli)",
			err,
		)
	}
	return path, nil
}

// LocalRunner invokes a scala-cli binary on the host.
type LocalRunner struct {
	// Binary is the resolved scala-cli path.
	Binary string

	// Extras are free-form arguments appended to every invocation
	// (e.g. a pinned --jvm or --server=false).
	Extras []string

	// LiveOut and LiveErr receive the raw live passthrough. They
	// default to os.Stdout and os.Stderr.
	LiveOut io.Writer
	LiveErr io.Writer
}

// NewLocalRunner locates the binary (see Locate) and returns a runner
// with console passthrough.
func NewLocalRunner(override string, extras []string) (*LocalRunner, error) {
	binary, err := Locate(override)
	if err != nil {
		return nil, err
	}
	return &LocalRunner{Binary: binary, Extras: extras}, nil
}

// Run invokes `scala-cli run .` or `scala-cli test .` in dir.
func (r *LocalRunner) Run(ctx context.Context, dir string, test bool) (model.RunOutcome, error) {
	mode := "run"
	if test {
		mode = "test"
	}
	args := append([]string{mode, "."}, r.Extras...)

	// #nosec G204 — the binary is operator-configured and the
	// arguments are constructed internally.
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = dir

	sink := newCapture(r.liveOut(), r.liveErr())
	cmd.Stdout = sink.Stdout
	cmd.Stderr = sink.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The toolchain ran and exited non-zero. That is a
			// verification input, not an invocation error.
			return sink.Outcome(exitErr.ExitCode()), nil
		}
		return model.RunOutcome{}, model.WrapCLIError(
			model.ExitToolchainNotFound,
			fmt.Sprintf("failed to invoke %s", r.Binary),
			err,
		)
	}
	return sink.Outcome(0), nil
}

func (r *LocalRunner) liveOut() io.Writer {
	if r.LiveOut != nil {
		return r.LiveOut
	}
	return os.Stdout
}

func (r *LocalRunner) liveErr() io.Writer {
	if r.LiveErr != nil {
		return r.LiveErr
	}
	return os.Stderr
}
