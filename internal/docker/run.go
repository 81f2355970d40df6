// run.go implements one-shot container runs for the docker toolchain
// runner: create, attach, start, wait, remove, with the attached stream
// demultiplexed into the caller's stdout/stderr sinks.
package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// RunSpec describes one container run.
type RunSpec struct {
	// Image is the container image to run. It must already provide the
	// scala-cli binary on its PATH.
	Image string

	// Cmd is the full command line to execute inside the container.
	Cmd []string

	// HostDir is the host directory bind-mounted at WorkDir.
	HostDir string

	// WorkDir is the container working directory the command runs in.
	WorkDir string
}

// RunContainer executes spec to completion and returns the container's
// exit code. All container output flows through stdout/stderr as it
// arrives; Docker multiplexes both streams over the attach connection and
// stdcopy demultiplexes them back.
//
// The container is force-removed afterwards regardless of outcome.
func RunContainer(ctx context.Context, cli *Client, spec RunSpec, stdout, stderr io.Writer) (int, error) {
	created, err := cli.Inner().ContainerCreate(ctx,
		&container.Config{
			Image:      spec.Image,
			Cmd:        spec.Cmd,
			WorkingDir: spec.WorkDir,
		},
		&container.HostConfig{
			Binds: []string{spec.HostDir + ":" + spec.WorkDir},
		},
		nil, nil, "")
	if err != nil {
		return 0, model.WrapCLIError(
			model.ExitDockerNotRunning,
			fmt.Sprintf("failed to create container from image %q", spec.Image),
			err,
		)
	}

	// Removal must not inherit a cancelled ctx, or a Ctrl-C would leak
	// the container.
	defer func() {
		_ = cli.Inner().ContainerRemove(context.WithoutCancel(ctx), created.ID,
			container.RemoveOptions{Force: true})
	}()

	attach, err := cli.Inner().ContainerAttach(ctx, created.ID, container.AttachOptions{
		Stream: true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return 0, model.WrapCLIError(model.ExitDockerNotRunning, "failed to attach to container", err)
	}
	defer attach.Close()

	if err := cli.Inner().ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return 0, model.WrapCLIError(model.ExitDockerNotRunning, "failed to start container", err)
	}

	// Drain the attach stream concurrently with the wait; the stream
	// closes when the container exits.
	copyDone := make(chan error, 1)
	go func() {
		_, copyErr := stdcopy.StdCopy(stdout, stderr, attach.Reader)
		copyDone <- copyErr
	}()

	waitCh, errCh := cli.Inner().ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)
	select {
	case status := <-waitCh:
		if copyErr := <-copyDone; copyErr != nil && copyErr != io.EOF {
			return 0, fmt.Errorf("failed to read container output: %w", copyErr)
		}
		if status.Error != nil {
			return 0, fmt.Errorf("container wait reported: %s", status.Error.Message)
		}
		return int(status.StatusCode), nil
	case err := <-errCh:
		return 0, model.WrapCLIError(model.ExitDockerNotRunning, "failed to wait for container", err)
	}
}
