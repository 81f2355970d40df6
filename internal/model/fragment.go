// fragment.go defines the Fragment aggregate and its Content sum type.
//
// Content deliberately has exactly two variants — a single anonymous file
// or an ordered set of named files — modeled as a sealed interface rather
// than a class-like hierarchy with shared state. Fragments are immutable
// after the grouping phase; all transformations build new values.
package model

// DefaultFileName is the file name used when a fragment's content is a
// bare single body with no declared name. The .sc extension marks it as
// a scala-cli script.
const DefaultFileName = "snippet.sc"

// Fragment is one extracted, runnable documentation example. It may span
// several original locations when multiple fenced blocks were merged into
// one multi-file example.
type Fragment struct {
	// Locations is non-empty. The first entry is the primary location,
	// which anchors ordering, naming and reporting.
	Locations []Location

	// Content is the code of the example: SingleContent or MultiContent.
	Content Content
}

// Location returns the fragment's primary location.
func (f Fragment) Location() Location {
	return f.Locations[0]
}

// Content is the sealed sum type for a fragment's code.
// The only implementations are SingleContent and MultiContent.
type Content interface {
	isContent()
}

// SingleContent is one anonymous file body. When written to disk it is
// stored as DefaultFileName.
type SingleContent struct {
	Text string
}

func (SingleContent) isContent() {}

// NamedFile is one file of a multi-file example.
type NamedFile struct {
	// Name is the declared file name, possibly with nested path
	// components (e.g. "project/Main.scala"). Unique within one
	// MultiContent.
	Name string

	// Text is the file body.
	Text string
}

// MultiContent is an ordered set of named files. Order is first-seen
// across merges and is preserved both when writing to disk and when
// classifying.
type MultiContent struct {
	Files []NamedFile
}

func (MultiContent) isContent() {}

// Bodies returns the file bodies of c in insertion order. A SingleContent
// yields exactly one body. This is the iteration primitive used by the
// classifier, which evaluates each file independently.
func Bodies(c Content) []string {
	switch v := c.(type) {
	case SingleContent:
		return []string{v.Text}
	case MultiContent:
		bodies := make([]string, 0, len(v.Files))
		for _, f := range v.Files {
			bodies = append(bodies, f.Text)
		}
		return bodies
	default:
		return nil
	}
}

// Files returns the named files of c in insertion order, lifting a bare
// SingleContent to a one-entry list under DefaultFileName. This is the
// shape used when writing a fragment to its scratch directory.
func Files(c Content) []NamedFile {
	switch v := c.(type) {
	case SingleContent:
		return []NamedFile{{Name: DefaultFileName, Text: v.Text}}
	case MultiContent:
		return v.Files
	default:
		return nil
	}
}
