// Package markdown — extract_test.go contains unit tests for the
// fragment extractor state machine.
package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// doc is a test helper building a Document from joined lines.
func doc(name string, lines ...string) Document {
	return NewDocument(name, strings.Join(lines, "\n"))
}

// TestExtractSingleFragment verifies the basic fence-to-fragment path,
// including the location captured at fence open.
func TestExtractSingleFragment(t *testing.T) {
	d := doc("usage.md",
		"# Usage",
		"",
		"```scala",
		`println("hi")`,
		"```",
	)

	fragments := Extract(d)
	require.Len(t, fragments, 1)

	f := fragments[0]
	assert.Equal(t, model.SingleContent{Text: `println("hi")`}, f.Content)

	loc := f.Location()
	assert.Equal(t, "usage.md", loc.Document)
	assert.Equal(t, 4, loc.Line, "location points at the first code line")
	assert.Equal(t, "Usage", loc.Section)
	assert.Equal(t, 1, loc.Ordinal)
}

// TestExtractOrdinals verifies per-section ordinal counting and its reset
// on every new section header.
func TestExtractOrdinals(t *testing.T) {
	d := doc("a.md",
		"# One",
		"```scala",
		"1",
		"```",
		"```scala",
		"2",
		"```",
		"## Two",
		"```java",
		"3",
		"```",
	)

	fragments := Extract(d)
	require.Len(t, fragments, 3)

	assert.Equal(t, "a.md#One[1]", fragments[0].Location().StableName())
	assert.Equal(t, "a.md#One[2]", fragments[1].Location().StableName())
	assert.Equal(t, "a.md#Two[1]", fragments[2].Location().StableName(), "ordinal resets per section")
}

// TestExtractIgnoresOtherFences verifies that only scala/java fences
// yield fragments; everything else is inert prose.
func TestExtractIgnoresOtherFences(t *testing.T) {
	d := doc("a.md",
		"```bash",
		"rm -rf /",
		"```",
		"```",
		"plain fence",
		"```",
		"```scala",
		"ok",
		"```",
	)

	fragments := Extract(d)
	require.Len(t, fragments, 1)
	assert.Equal(t, model.SingleContent{Text: "ok"}, fragments[0].Content)
}

// TestExtractIndentedFence verifies uniform indentation stripping: the
// fence's indent width is removed from every body line that is long
// enough, and shorter lines pass through unchanged.
func TestExtractIndentedFence(t *testing.T) {
	d := doc("a.md",
		"  ```scala",
		"  val x = 1",
		"",
		"    println(x)",
		"  ```",
	)

	fragments := Extract(d)
	require.Len(t, fragments, 1)
	assert.Equal(t, "val x = 1\n\n  println(x)", fragments[0].Content.(model.SingleContent).Text)
}

// TestExtractFenceTrailingTokens verifies that trailing text on an
// opening fence is ignored, not validated.
func TestExtractFenceTrailingTokens(t *testing.T) {
	d := doc("a.md",
		"```scala title=example compile-only",
		"val a = 1",
		"```",
	)

	require.Len(t, Extract(d), 1)
}

// TestExtractUnterminatedFence verifies that a fence still open at end of
// document is silently dropped — source documents are not under this
// tool's control.
func TestExtractUnterminatedFence(t *testing.T) {
	d := doc("a.md",
		"```scala",
		"val x = 1",
	)

	assert.Empty(t, Extract(d))
}

// TestExtractRoundTrip verifies that an extracted body reproduces the
// fenced block's text modulo uniform indentation stripping.
func TestExtractRoundTrip(t *testing.T) {
	body := []string{
		`//> using scala 3.3.1`,
		"",
		"@main def run(): Unit =",
		`  println("yolo")`,
	}

	lines := append([]string{"# Doc", "```scala"}, body...)
	lines = append(lines, "```")
	fragments := Extract(doc("a.md", lines...))

	require.Len(t, fragments, 1)
	assert.Equal(t, strings.Join(body, "\n"), fragments[0].Content.(model.SingleContent).Text)
}
