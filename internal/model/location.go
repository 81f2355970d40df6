// location.go defines where a documentation example came from and the
// identifiers derived from that origin.
//
// Every extracted fragment carries at least one Location. The first one is
// the fragment's primary location and decides its ordering, its scratch
// directory name (Slug) and the name users filter on (StableName).
package model

import (
	"fmt"
	"strings"
)

// Location identifies where a fragment's code begins inside a markdown
// document. It is the origin coordinate from which all derived names
// (slug, stable name, hint) are computed.
type Location struct {
	// Document is the simple file name of the markdown document,
	// e.g. "usage.md". No directory components.
	Document string

	// Line is the 1-based line number of the first line of the
	// fragment's code (the line after the opening fence).
	Line int

	// Section is the title of the markdown section enclosing the
	// fragment. Empty if the fragment appears before any header.
	Section string

	// Ordinal counts fragments opened in the current section so far,
	// starting at 1. It resets whenever a new section header is seen.
	Ordinal int
}

// StableName returns the human-facing identifier for a fragment:
// "file.md#Section[ordinal]". Unlike line numbers, the stable name
// survives edits elsewhere in the document, which makes it suitable
// for the --filter flag and for CI logs.
func (l Location) StableName() string {
	return fmt.Sprintf("%s#%s[%d]", l.Document, l.Section, l.Ordinal)
}

// Hint returns "file.md:line" — the exact position to open in an editor
// when a fragment fails verification.
func (l Location) Hint() string {
	return fmt.Sprintf("%s:%d", l.Document, l.Line)
}

// Slug returns a filesystem-safe directory name derived from the stable
// name. Every character outside [a-z0-9] is replaced with a hyphen and
// runs of hyphens are collapsed, so distinct fragments map to distinct,
// portable directory names under the scratch root.
func (l Location) Slug() string {
	var sb strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(l.StableName()) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}

// Less reports whether l sorts before other under the global fragment
// ordering key: (document file name, line number).
func (l Location) Less(other Location) bool {
	if l.Document != other.Document {
		return l.Document < other.Document
	}
	return l.Line < other.Line
}
