// extract.go implements the fragment extractor: a single forward pass
// over a document's lines with two modes, awaiting and reading.
//
// Only fences tagged "scala" or "java" yield fragments; every other line
// outside a fence is inert prose. An unterminated fence at document end
// is dropped without error.
package markdown

import (
	"regexp"
	"strings"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

var (
	// sectionRe matches a markdown section header: one or more '#'
	// followed by a title.
	sectionRe = regexp.MustCompile(`^#+\s*(.*?)\s*$`)

	// fenceOpenRe matches an opening code fence for a runnable
	// language: optional indent, three backticks, "scala" or "java",
	// then arbitrary trailing text (ignored, not validated).
	fenceOpenRe = regexp.MustCompile("^([ \t]*)```(scala|java)(\\s.*)?$")
)

// isFenceClose reports whether line terminates a fenced block: only
// whitespace is allowed before the three backticks.
func isFenceClose(line string) bool {
	return strings.TrimSpace(line) == "```"
}

// Extract scans doc in one forward pass and returns the raw fragments in
// document order. Each fragment's content is the fenced block's text with
// the fence's indentation uniformly stripped.
func Extract(doc Document) []model.Fragment {
	var fragments []model.Fragment

	// loc tracks the current section and per-section ordinal. Its Line
	// and Ordinal advance each time a fence opens.
	loc := model.Location{Document: doc.Name}

	reading := false
	indent := 0
	var buffer []string

	for i, line := range doc.Lines {
		lineNo := i + 1

		if reading {
			if isFenceClose(line) {
				fragments = append(fragments, model.Fragment{
					Locations: []model.Location{loc},
					Content:   model.SingleContent{Text: strings.Join(buffer, "\n")},
				})
				reading = false
				continue
			}
			// Strip exactly the fence's indentation when the line
			// is long enough; shorter lines (typically blank ones)
			// pass through unchanged.
			if len(line) >= indent {
				line = line[indent:]
			}
			buffer = append(buffer, line)
			continue
		}

		if m := fenceOpenRe.FindStringSubmatch(line); m != nil {
			// The fragment's code begins on the line after the
			// opening fence.
			loc.Ordinal++
			loc.Line = lineNo + 1
			indent = len(m[1])
			buffer = nil
			reading = true
			continue
		}

		if strings.HasPrefix(line, "#") {
			if m := sectionRe.FindStringSubmatch(line); m != nil {
				loc = model.Location{
					Document: doc.Name,
					Line:     lineNo,
					Section:  m[1],
				}
			}
		}
	}

	// A fence still open here is silently dropped: the source document
	// is not under this tool's control.
	return fragments
}
