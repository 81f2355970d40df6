// combine.go implements the pure content-merge function used when
// multi-file fragments are folded together.
package markdown

import "github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"

// Combine merges two fragment contents.
//
// Two single bodies concatenate with a blank-line separator. In every
// other case both sides are lifted to filename-keyed file lists (a bare
// single body becomes model.DefaultFileName) and the keys are unioned in
// first-seen order: all of a's names first, then b's new names. Where
// both sides define the same name, the two bodies concatenate the same
// way singles do.
//
// Combine is not commutative in body ordering: a's text always precedes
// b's text.
func Combine(a, b model.Content) model.Content {
	sa, aSingle := a.(model.SingleContent)
	sb, bSingle := b.(model.SingleContent)
	if aSingle && bSingle {
		return model.SingleContent{Text: joinBodies(sa.Text, sb.Text)}
	}

	merged := append([]model.NamedFile(nil), model.Files(a)...)
	for _, f := range model.Files(b) {
		if i := indexOfFile(merged, f.Name); i >= 0 {
			merged[i].Text = joinBodies(merged[i].Text, f.Text)
			continue
		}
		merged = append(merged, f)
	}
	return model.MultiContent{Files: merged}
}

// joinBodies concatenates two file bodies with a blank-line separator.
func joinBodies(a, b string) string {
	return a + "\n\n" + b
}

// indexOfFile returns the position of name in files, or -1. File lists
// are tiny (a handful of entries), so a linear scan is fine.
func indexOfFile(files []model.NamedFile, name string) int {
	for i := range files {
		if files[i].Name == name {
			return i
		}
	}
	return -1
}
