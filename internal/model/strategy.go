// strategy.go defines the verification strategy sum type and the outcome
// of one external toolchain run.
package model

import (
	"fmt"
	"strings"
)

// Strategy is the sealed sum type describing how a fragment should be
// verified. Exactly one strategy is computed per final fragment.
// The only implementations are SkipStrategy, ExpectFailure and
// ExpectSuccess.
type Strategy interface {
	isStrategy()

	// Describe returns a short human-readable label for CLI output,
	// e.g. `skip (pseudocode)` or `expect success`.
	Describe() string
}

// SkipStrategy marks a fragment that must not be executed at all.
// Skipped fragments are reported separately and count neither as passed
// nor as failed.
type SkipStrategy struct {
	// Reason is a short explanation, e.g. "pseudocode" or "sbt example".
	Reason string
}

func (SkipStrategy) isStrategy() {}

func (s SkipStrategy) Describe() string {
	return fmt.Sprintf("skip (%s)", s.Reason)
}

// ExpectFailure marks a fragment whose run must exit non-zero and whose
// error stream must contain every expected error string.
type ExpectFailure struct {
	// Errors is the ordered list of expected-error strings extracted
	// from `// expected error:` comment blocks. Each entry must match
	// independently.
	Errors []string
}

func (ExpectFailure) isStrategy() {}

func (s ExpectFailure) Describe() string {
	return fmt.Sprintf("expect failure (%d expectation(s))", len(s.Errors))
}

// ExpectSuccess marks a fragment whose run must exit zero and whose
// output stream must contain every expected output string. Outputs may
// be empty, in which case only the exit code is checked.
type ExpectSuccess struct {
	// Outputs is the ordered list of expected-output strings extracted
	// from `// expected output:` comment blocks.
	Outputs []string
}

func (ExpectSuccess) isStrategy() {}

func (s ExpectSuccess) Describe() string {
	return fmt.Sprintf("expect success (%d expectation(s))", len(s.Outputs))
}

// RunOutcome captures one external toolchain run. All captured text is
// ANSI-escape-free; the raw bytes were already passed through to the
// console while the run was live. A RunOutcome is produced fresh per
// executed fragment, consumed immediately by the verifier and not
// retained.
type RunOutcome struct {
	// ExitCode is the toolchain process exit code.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Combined interleaves stdout and stderr in original temporal
	// order, as seen on the console.
	Combined string
}

// Ok reports whether the run exited with code zero.
func (o RunOutcome) Ok() bool {
	return o.ExitCode == 0
}

// FragmentResult records the verdict for one fragment within a suite.
type FragmentResult struct {
	// StableName identifies the fragment ("file.md#Section[ordinal]").
	StableName string `json:"stableName" yaml:"stableName"`

	// Hint is the editor-friendly position ("file.md:line").
	Hint string `json:"hint" yaml:"hint"`

	// Detail explains a skip or a failure. Empty for passed fragments.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Unmatched lists expected strings that were not found in the
	// captured streams. Only set for failed fragments.
	Unmatched []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}

// SuiteResult aggregates the verdicts of all fragments extracted from one
// document.
type SuiteResult struct {
	// Name is the document file name, e.g. "usage.md".
	Name string `json:"name" yaml:"name"`

	// Passed, Failed and Skipped partition the suite's fragments.
	Passed  []FragmentResult `json:"passed,omitempty" yaml:"passed,omitempty"`
	Failed  []FragmentResult `json:"failed,omitempty" yaml:"failed,omitempty"`
	Skipped []FragmentResult `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Ok reports whether no fragment in the suite failed verification.
// Skips never count as failures.
func (s SuiteResult) Ok() bool {
	return len(s.Failed) == 0
}

// Summary returns a one-line tally, e.g. "3 passed, 1 failed, 2 skipped".
func (s SuiteResult) Summary() string {
	parts := []string{
		fmt.Sprintf("%d passed", len(s.Passed)),
		fmt.Sprintf("%d failed", len(s.Failed)),
		fmt.Sprintf("%d skipped", len(s.Skipped)),
	}
	return strings.Join(parts, ", ")
}
