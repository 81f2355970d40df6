// Package toolchain invokes the external scala-cli binary against a
// fragment's scratch directory and captures the result.
//
// The toolchain is an opaque collaborator: given a directory it runs or
// tests the code inside and reports an exit code plus its output streams.
// This package never interprets the code itself.
//
// Two runners are provided:
//   - LocalRunner shells out to a scala-cli binary found on the host.
//   - DockerRunner executes the same invocation inside a container of a
//     configured image with the fragment directory bind-mounted, for
//     hermetic CI runs.
//
// Both runners duplicate every output byte into in-memory capture buffers
// and live console passthrough, preserving stdout/stderr temporal
// interleaving in a combined buffer. Captured text is ANSI-stripped; the
// live passthrough keeps the raw bytes.
package toolchain
