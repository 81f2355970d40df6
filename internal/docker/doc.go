// Package docker provides a thin wrapper around the Docker Engine SDK
// used by the containerized toolchain runner.
//
// This package handles:
//   - Docker client initialization with automatic socket detection
//     (Linux, macOS, Windows)
//   - One-shot container runs: create, attach, start, wait, remove,
//     with the attached stream demultiplexed into stdout/stderr sinks
//
// The package uses github.com/docker/docker/client as the underlying
// Docker SDK, with version negotiation enabled for broad compatibility.
package docker
