package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// TestVerifyExpectSuccess verifies the success rules: zero exit code and
// every trimmed expected output a substring of sanitized stdout.
func TestVerifyExpectSuccess(t *testing.T) {
	tests := []struct {
		name     string
		strategy model.ExpectSuccess
		outcome  model.RunOutcome
		passed   bool
	}{
		{
			name:     "matching output and zero exit passes",
			strategy: model.ExpectSuccess{Outputs: []string{"yolo"}},
			outcome:  model.RunOutcome{ExitCode: 0, Stdout: "yolo\n"},
			passed:   true,
		},
		{
			name:     "non-zero exit fails despite matching output",
			strategy: model.ExpectSuccess{Outputs: []string{"yolo"}},
			outcome:  model.RunOutcome{ExitCode: 1, Stdout: "yolo\n"},
			passed:   false,
		},
		{
			name:     "missing output fails",
			strategy: model.ExpectSuccess{Outputs: []string{"yolo"}},
			outcome:  model.RunOutcome{ExitCode: 0, Stdout: "nope\n"},
			passed:   false,
		},
		{
			name:     "no expectations only checks the exit code",
			strategy: model.ExpectSuccess{},
			outcome:  model.RunOutcome{ExitCode: 0},
			passed:   true,
		},
		{
			name:     "expected strings are trimmed before matching",
			strategy: model.ExpectSuccess{Outputs: []string{"  yolo  "}},
			outcome:  model.RunOutcome{ExitCode: 0, Stdout: "yolo"},
			passed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verify(tt.strategy, tt.outcome)
			assert.Equal(t, tt.passed, got.Passed, got.Detail)
		})
	}
}

// TestVerifyExpectFailure verifies the failure rules: non-zero exit code
// and every trimmed expected error a substring of sanitized stderr. A
// zero exit code fails regardless of text match.
func TestVerifyExpectFailure(t *testing.T) {
	tests := []struct {
		name     string
		strategy model.ExpectFailure
		outcome  model.RunOutcome
		passed   bool
	}{
		{
			name:     "matching error and non-zero exit passes",
			strategy: model.ExpectFailure{Errors: []string{"boom"}},
			outcome:  model.RunOutcome{ExitCode: 1, Stderr: "boom!!"},
			passed:   true,
		},
		{
			name:     "zero exit fails regardless of text match",
			strategy: model.ExpectFailure{Errors: []string{"boom"}},
			outcome:  model.RunOutcome{ExitCode: 0, Stderr: "boom"},
			passed:   false,
		},
		{
			name:     "missing error text fails",
			strategy: model.ExpectFailure{Errors: []string{"boom"}},
			outcome:  model.RunOutcome{ExitCode: 2, Stderr: "unrelated"},
			passed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verify(tt.strategy, tt.outcome)
			assert.Equal(t, tt.passed, got.Passed, got.Detail)
		})
	}
}

// TestVerifyReportsUnmatched verifies that failures name the expectations
// that were not found.
func TestVerifyReportsUnmatched(t *testing.T) {
	got := Verify(
		model.ExpectSuccess{Outputs: []string{"found", "missing one", "missing two"}},
		model.RunOutcome{ExitCode: 0, Stdout: "found"},
	)
	assert.False(t, got.Passed)
	assert.Equal(t, []string{"missing one", "missing two"}, got.Unmatched)
}

// TestSanitize verifies that toolchain-internal noise lines are removed
// before matching while program output is preserved.
func TestSanitize(t *testing.T) {
	captured := "Compiling project (Scala 3.3.1, JVM)\nyolo\nCompiled project (Scala 3.3.1, JVM)\n"
	assert.Equal(t, "yolo\n", Sanitize(captured))

	// Expectation matching sees the sanitized form.
	got := Verify(
		model.ExpectSuccess{Outputs: []string{"yolo"}},
		model.RunOutcome{ExitCode: 0, Stdout: captured},
	)
	assert.True(t, got.Passed)
}
