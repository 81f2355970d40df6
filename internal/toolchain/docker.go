// docker.go implements the containerized runner: the same scala-cli
// invocation as LocalRunner, executed inside a container of a configured
// image with the fragment directory bind-mounted.
package toolchain

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/docker"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// containerWorkDir is where a fragment's directory is mounted inside the
// container.
const containerWorkDir = "/spec"

// DockerRunner executes fragments inside containers for hermetic CI runs.
// The image must provide scala-cli on its PATH (e.g.
// virtuslab/scala-cli).
type DockerRunner struct {
	// Client is the Docker daemon connection.
	Client *docker.Client

	// Image is the container image to run fragments in.
	Image string

	// Extras are appended to every scala-cli invocation.
	Extras []string

	// LiveOut and LiveErr receive the live passthrough; they default
	// to os.Stdout and os.Stderr.
	LiveOut io.Writer
	LiveErr io.Writer
}

// NewDockerRunner connects to the Docker daemon, verifies it responds and
// returns a runner for the given image.
func NewDockerRunner(ctx context.Context, image string, extras []string) (*DockerRunner, error) {
	cli, err := docker.NewClient()
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx); err != nil {
		_ = cli.Close()
		return nil, err
	}
	return &DockerRunner{Client: cli, Image: image, Extras: extras}, nil
}

// Close releases the Docker client.
func (r *DockerRunner) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Run executes `scala-cli run .` or `scala-cli test .` in a fresh
// container with dir mounted at the working directory.
func (r *DockerRunner) Run(ctx context.Context, dir string, test bool) (model.RunOutcome, error) {
	mode := "run"
	if test {
		mode = "test"
	}
	cmd := append([]string{"scala-cli", mode, "."}, r.Extras...)

	// Bind mounts require an absolute host path.
	hostDir, err := filepath.Abs(dir)
	if err != nil {
		return model.RunOutcome{}, err
	}

	sink := newCapture(r.liveOut(), r.liveErr())
	exitCode, err := docker.RunContainer(ctx, r.Client, docker.RunSpec{
		Image:   r.Image,
		Cmd:     cmd,
		HostDir: hostDir,
		WorkDir: containerWorkDir,
	}, sink.Stdout, sink.Stderr)
	if err != nil {
		return model.RunOutcome{}, err
	}
	return sink.Outcome(exitCode), nil
}

func (r *DockerRunner) liveOut() io.Writer {
	if r.LiveOut != nil {
		return r.LiveOut
	}
	return os.Stdout
}

func (r *DockerRunner) liveErr() io.Writer {
	if r.LiveErr != nil {
		return r.LiveErr
	}
	return os.Stderr
}
