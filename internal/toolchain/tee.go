// tee.go implements output capture with live passthrough.
//
// A spawned process's stdout and stderr are drained on separate
// goroutines, so every sink shared between the two streams must be safe
// for concurrent writes. Rather than subclassing writers, each stream is
// one io.MultiWriter feeding the console, the per-stream buffer and the
// shared combined buffer.
package toolchain

import (
	"bytes"
	"io"
	"sync"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// lockedBuffer is a bytes.Buffer safe for concurrent writers. It backs
// the combined stream, which both the stdout and stderr goroutines feed.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// capture wires one run's output sinks. Stdout and Stderr are handed to
// the process (or the container attach demultiplexer); Outcome assembles
// the ANSI-stripped captured form afterwards.
type capture struct {
	stdout   lockedBuffer
	stderr   lockedBuffer
	combined lockedBuffer

	// Stdout and Stderr duplicate bytes to the live console and the
	// capture buffers.
	Stdout io.Writer
	Stderr io.Writer
}

// newCapture builds a capture whose live passthrough goes to liveOut and
// liveErr. Either may be io.Discard to silence passthrough (used in
// tests).
func newCapture(liveOut, liveErr io.Writer) *capture {
	c := &capture{}
	c.Stdout = io.MultiWriter(liveOut, &c.stdout, &c.combined)
	c.Stderr = io.MultiWriter(liveErr, &c.stderr, &c.combined)
	return c
}

// Outcome freezes the captured streams into a RunOutcome with the given
// exit code, stripping ANSI escapes from the captured form only.
func (c *capture) Outcome(exitCode int) model.RunOutcome {
	return model.RunOutcome{
		ExitCode: exitCode,
		Stdout:   StripANSI(c.stdout.String()),
		Stderr:   StripANSI(c.stderr.String()),
		Combined: StripANSI(c.combined.String()),
	}
}
