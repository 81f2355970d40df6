// classify.go implements per-fragment strategy selection.
//
// Each file body of a fragment is classified independently, then the
// per-file strategies reduce left-to-right in file insertion order:
// any skip wins (first found), else any expected failure wins with all
// files' error lists concatenated, else all expected outputs concatenate.
package verify

import (
	"strings"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/markdown"
	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// Markup tokens recognized inside fragment bodies. All are fixed,
// case-sensitive literals.
const (
	// DirectiveMarker is scala-cli's self-contained-configuration
	// directive. A body carrying it declares everything needed to run
	// on its own.
	DirectiveMarker = "//> using"

	// SbtMarker is the sbt dependency syntax. Bodies carrying it are
	// build-definition excerpts, not runnable scripts.
	SbtMarker = "libraryDependencies"

	// OutputMarker opens an expected-output comment block.
	OutputMarker = "// expected output:"

	// ErrorMarker opens an expected-error comment block.
	ErrorMarker = "// expected error:"
)

// Skip reasons reported for non-runnable fragments.
const (
	ReasonPseudocode = "pseudocode"
	ReasonSbtExample = "sbt example"
)

// Classify determines the verification strategy for one fragment.
func Classify(f model.Fragment) model.Strategy {
	bodies := model.Bodies(f.Content)

	perFile := make([]model.Strategy, 0, len(bodies))
	for _, body := range bodies {
		perFile = append(perFile, classifyBody(body))
	}

	// First skip wins outright.
	for _, s := range perFile {
		if skip, ok := s.(model.SkipStrategy); ok {
			return skip
		}
	}

	// Any expected failure wins next; error lists concatenate across
	// files while sibling expected outputs are discarded.
	var errors []string
	failure := false
	for _, s := range perFile {
		if f, ok := s.(model.ExpectFailure); ok {
			failure = true
			errors = append(errors, f.Errors...)
		}
	}
	if failure {
		return model.ExpectFailure{Errors: errors}
	}

	var outputs []string
	for _, s := range perFile {
		if succ, ok := s.(model.ExpectSuccess); ok {
			outputs = append(outputs, succ.Outputs...)
		}
	}
	return model.ExpectSuccess{Outputs: outputs}
}

// classifyBody chooses the strategy for a single file body.
func classifyBody(body string) model.Strategy {
	// A body with neither a toolchain directive nor a multi-file
	// header is an illustration, not a runnable example.
	if !strings.Contains(body, DirectiveMarker) && !markdown.HasFileHeader(body) {
		return model.SkipStrategy{Reason: ReasonPseudocode}
	}

	// sbt build excerpts carry directives of their own but cannot be
	// handed to scala-cli.
	if strings.Contains(body, SbtMarker) {
		return model.SkipStrategy{Reason: ReasonSbtExample}
	}

	if hasMarkerLine(body, ErrorMarker) {
		return model.ExpectFailure{Errors: ExtractExpectations(body, ErrorMarker)}
	}

	return model.ExpectSuccess{Outputs: ExtractExpectations(body, OutputMarker)}
}
