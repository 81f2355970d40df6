package suite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/config"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// runCall records one fake toolchain invocation.
type runCall struct {
	Dir  string
	Test bool
}

// fakeRunner implements toolchain.Runner against canned outcomes, so suite
// tests never touch a real scala-cli binary.
type fakeRunner struct {
	Outcome model.RunOutcome
	Err     error
	Calls   []runCall
}

func (r *fakeRunner) Run(_ context.Context, dir string, test bool) (model.RunOutcome, error) {
	r.Calls = append(r.Calls, runCall{Dir: dir, Test: test})
	if r.Err != nil {
		return model.RunOutcome{}, r.Err
	}
	return r.Outcome, nil
}

// writeDocs materializes named markdown documents in a temp dir and
// returns its path.
func writeDocs(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newChecker(t *testing.T, docsDir string, runner *fakeRunner) *Checker {
	t.Helper()
	cfg := config.Default()
	cfg.DocsDir = docsDir
	cfg.ScratchDir = t.TempDir()
	return &Checker{
		Config: cfg,
		Runner: runner,
		Out:    &bytes.Buffer{},
	}
}

// TestCheckerPassingFragment runs a single verified fragment end to end:
// extraction, classification, scratch writing, execution and output
// matching.
func TestCheckerPassingFragment(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"usage.md": `# Install

` + "```scala" + `
//> using scala 3.3.3
println("yolo")
// expected output:
// yolo
` + "```" + `
`,
	})

	runner := &fakeRunner{Outcome: model.RunOutcome{ExitCode: 0, Stdout: "yolo\n"}}
	checker := newChecker(t, docsDir, runner)

	results, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "usage.md", result.Name)
	require.Len(t, result.Passed, 1)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "usage.md#Install[1]", result.Passed[0].StableName)
	assert.True(t, Ok(results))

	// The fragment ran exactly once, in run mode, from its slug directory.
	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.False(t, call.Test)
	assert.Equal(t, "usage-md-install-1", filepath.Base(call.Dir))

	written, err := os.ReadFile(filepath.Join(call.Dir, "snippet.sc"))
	require.NoError(t, err)
	assert.Contains(t, string(written), `println("yolo")`)
}

// TestCheckerFailingFragment verifies that an unmatched expectation lands
// in Failed with the missing string reported.
func TestCheckerFailingFragment(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"usage.md": `# Install

` + "```scala" + `
//> using scala 3.3.3
println("nope")
// expected output:
// yolo
` + "```" + `
`,
	})

	runner := &fakeRunner{Outcome: model.RunOutcome{ExitCode: 0, Stdout: "nope\n"}}
	checker := newChecker(t, docsDir, runner)

	results, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Empty(t, result.Passed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, []string{"yolo"}, result.Failed[0].Unmatched)
	assert.False(t, Ok(results))
}

// TestCheckerSkipsWithoutRunning verifies that pseudocode and sbt
// fragments are tallied as skipped and never reach the runner.
func TestCheckerSkipsWithoutRunning(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"design.md": `# Sketch

` + "```scala" + `
val idea = ???
` + "```" + `

# Build

` + "```scala" + `
//> using scala 3.3.3
libraryDependencies += "org" %% "lib" % "1.0.0"
` + "```" + `
`,
	})

	runner := &fakeRunner{}
	checker := newChecker(t, docsDir, runner)

	results, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Empty(t, result.Passed)
	assert.Empty(t, result.Failed)
	require.Len(t, result.Skipped, 2)
	assert.Empty(t, runner.Calls)
	assert.True(t, Ok(results), "skips alone do not fail the suite")
}

// TestCheckerMultiFileFragment verifies that tagged snippets merge into
// one fragment whose files all land in one scratch directory.
func TestCheckerMultiFileFragment(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"multi.md": `# Example

` + "```scala" + `
// file: a.scala - part of X
//> using scala 3.3.3
object A
` + "```" + `

` + "```scala" + `
// file: b.sc - part of X
println(A)
// expected output:
// A
` + "```" + `
`,
	})

	runner := &fakeRunner{Outcome: model.RunOutcome{ExitCode: 0, Stdout: "A\n"}}
	checker := newChecker(t, docsDir, runner)

	results, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Passed, 1)

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.False(t, call.Test, "no test-suffixed file, so run mode")

	for _, name := range []string{"a.scala", "b.sc"} {
		_, err := os.Stat(filepath.Join(call.Dir, name))
		assert.NoError(t, err, name)
	}
}

// TestCheckerFilterExcludes verifies that non-matching fragments are
// neither run nor tallied.
func TestCheckerFilterExcludes(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"usage.md": `# Install

` + "```scala" + `
//> using scala 3.3.3
println("a")
` + "```" + `

# Advanced

` + "```scala" + `
//> using scala 3.3.3
println("b")
` + "```" + `
`,
	})

	runner := &fakeRunner{Outcome: model.RunOutcome{ExitCode: 0}}
	checker := newChecker(t, docsDir, runner)
	checker.Config.Filter = "usage.md#Install*"

	results, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	require.Len(t, result.Passed, 1)
	assert.Equal(t, "usage.md#Install[1]", result.Passed[0].StableName)
	assert.Empty(t, result.Skipped, "filtered fragments are excluded, not skipped")
	assert.Len(t, runner.Calls, 1)
}

// TestCheckerAbortsOnRunnerError verifies that a toolchain invocation
// failure aborts the whole run instead of being tallied as a failure.
func TestCheckerAbortsOnRunnerError(t *testing.T) {
	docsDir := writeDocs(t, map[string]string{
		"usage.md": `# Install

` + "```scala" + `
//> using scala 3.3.3
println("a")
` + "```" + `
`,
	})

	runner := &fakeRunner{Err: errors.New("binary vanished")}
	checker := newChecker(t, docsDir, runner)

	_, err := checker.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage.md#Install[1]")
}

func TestMatchFilter(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"", "usage.md#Install[1]", true},
		{"usage.md#Install[1]", "usage.md#Install[1]", true},
		{"usage.md#*", "usage.md#Install[1]", true},
		{"usage.md#*", "other.md#Install[1]", false},
		{"*Install*", "usage.md#Install[1]", true},
		{"Install", "usage.md#Install[1]", false},
		{"usage.md#Install[*]", "usage.md#Install[12]", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFilter(tt.pattern, tt.name))
		})
	}
}

// TestWriteFragment covers nested file paths and test-mode detection.
func TestWriteFragment(t *testing.T) {
	t.Run("single content becomes snippet.sc", func(t *testing.T) {
		f := model.Fragment{
			Locations: []model.Location{{Document: "a.md", Section: "S", Ordinal: 1, Line: 3}},
			Content:   model.SingleContent{Text: "println(1)"},
		}

		dir, test, err := WriteFragment(t.TempDir(), f)
		require.NoError(t, err)
		assert.False(t, test)

		data, err := os.ReadFile(filepath.Join(dir, "snippet.sc"))
		require.NoError(t, err)
		assert.Equal(t, "println(1)\n", string(data))
	})

	t.Run("nested paths and test suffix", func(t *testing.T) {
		f := model.Fragment{
			Locations: []model.Location{{Document: "a.md", Section: "S", Ordinal: 1, Line: 3}},
			Content: model.MultiContent{Files: []model.NamedFile{
				{Name: "src/main.scala", Text: "object Main"},
				{Name: "spec.test.scala", Text: "class Spec"},
			}},
		}

		dir, test, err := WriteFragment(t.TempDir(), f)
		require.NoError(t, err)
		assert.True(t, test, "a .test.scala file selects test mode")

		_, err = os.Stat(filepath.Join(dir, "src", "main.scala"))
		assert.NoError(t, err)
	})
}

// TestWriteReport covers both encodings round-tripping through the
// summary types.
func TestWriteReport(t *testing.T) {
	results := []model.SuiteResult{{
		Name:   "usage.md",
		Passed: []model.FragmentResult{{StableName: "usage.md#Install[1]", Hint: "usage.md:4"}},
		Failed: []model.FragmentResult{{StableName: "usage.md#Install[2]", Hint: "usage.md:9", Unmatched: []string{"yolo"}}},
	}}

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, WriteReport(path, config.ReportJSON, results))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"usage.md#Install[1]"`)
		assert.Contains(t, string(data), `"yolo"`)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.yaml")
		require.NoError(t, WriteReport(path, config.ReportYAML, results))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []model.SuiteResult
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "usage.md", decoded[0].Name)
	})

	t.Run("unknown format", func(t *testing.T) {
		err := WriteReport(filepath.Join(t.TempDir(), "r"), "xml", results)
		assert.Error(t, err)
	})
}
