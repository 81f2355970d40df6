// verify.go compares one captured toolchain run against the chosen
// strategy.
package verify

import (
	"fmt"
	"strings"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// noiseMarkers are fixed substrings of toolchain-internal log lines that
// scala-cli interleaves with program output. Lines containing any of them
// are removed before expectation matching, so documented output never has
// to anticipate compiler chatter.
var noiseMarkers = []string{
	"Compiling project",
	"Compiled project",
	"Starting compilation server",
	"Downloading ",
	"Picked up JAVA_TOOL_OPTIONS",
}

// Sanitize removes toolchain-internal noise lines from captured text.
// ANSI escapes were already stripped at capture time.
func Sanitize(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isNoise(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isNoise(line string) bool {
	for _, marker := range noiseMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// Result is the verdict of verifying one fragment's run.
type Result struct {
	// Passed reports whether the run satisfied the strategy.
	Passed bool

	// Detail explains a failure (wrong exit code, unmatched text).
	// Empty when Passed.
	Detail string

	// Unmatched lists expected strings not found in the sanitized
	// stream, each trimmed the way matching trims them.
	Unmatched []string
}

// Verify checks outcome against strategy. Skip strategies never reach the
// verifier — the orchestrator reports them separately — so only the two
// expectation-bearing strategies are meaningful here.
//
// Expected-success fragments must exit zero and every trimmed expected
// output must be a substring of the sanitized stdout. Expected-failure
// fragments must exit non-zero and every trimmed expected error must be a
// substring of the sanitized stderr; a zero exit code fails regardless of
// text match.
func Verify(strategy model.Strategy, outcome model.RunOutcome) Result {
	switch s := strategy.(type) {
	case model.ExpectSuccess:
		if outcome.ExitCode != 0 {
			return Result{
				Detail: fmt.Sprintf("expected exit code 0, got %d", outcome.ExitCode),
			}
		}
		return matchAll(s.Outputs, Sanitize(outcome.Stdout), "output")

	case model.ExpectFailure:
		if outcome.ExitCode == 0 {
			return Result{
				Detail: "expected a failing exit code, got 0",
			}
		}
		return matchAll(s.Errors, Sanitize(outcome.Stderr), "error")

	default:
		return Result{Detail: fmt.Sprintf("strategy %T cannot be verified", strategy)}
	}
}

// matchAll requires every trimmed expectation to appear as a substring of
// stream. kind names the stream in failure details.
func matchAll(expected []string, stream, kind string) Result {
	var unmatched []string
	for _, want := range expected {
		want = strings.TrimSpace(want)
		if !strings.Contains(stream, want) {
			unmatched = append(unmatched, want)
		}
	}
	if len(unmatched) > 0 {
		return Result{
			Detail:    fmt.Sprintf("%d expected %s string(s) not found", len(unmatched), kind),
			Unmatched: unmatched,
		}
	}
	return Result{Passed: true}
}
