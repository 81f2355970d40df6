// expect.go implements extraction of literal expectation strings from
// trailing comment blocks.
//
// The extractor is a two-state machine (idle / collecting) run once per
// marker kind. A line exactly matching the marker (whitespace-trimmed)
// opens a block; subsequent `// <text>` lines accumulate; the first
// non-comment line flushes the accumulated lines as one newline-joined
// expectation string. End of text flushes a still-open block.
package verify

import "strings"

// hasMarkerLine reports whether any line of body, whitespace-trimmed,
// equals marker exactly.
func hasMarkerLine(body, marker string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == marker {
			return true
		}
	}
	return false
}

// ExtractExpectations returns the ordered expectation strings opened by
// marker within body. One marker block normally yields one (possibly
// multi-line) string; multiple blocks yield multiple strings, each of
// which must later match independently.
func ExtractExpectations(body, marker string) []string {
	var expectations []string
	var buffer []string
	collecting := false

	flush := func() {
		expectations = append(expectations, strings.Join(buffer, "\n"))
		buffer = nil
		collecting = false
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if !collecting {
			if trimmed == marker {
				collecting = true
			}
			continue
		}

		if strings.HasPrefix(trimmed, "//") {
			text := strings.TrimPrefix(trimmed, "//")
			text = strings.TrimPrefix(text, " ")
			buffer = append(buffer, text)
			continue
		}

		flush()
	}

	if collecting {
		flush()
	}
	return expectations
}
