package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// TestCombineSingles verifies that two single bodies concatenate with a
// blank-line separator, left before right.
func TestCombineSingles(t *testing.T) {
	got := Combine(
		model.SingleContent{Text: "A"},
		model.SingleContent{Text: "B"},
	)
	assert.Equal(t, model.SingleContent{Text: "A\n\nB"}, got)
}

// TestCombineLiftsSingles verifies that mixing single and multi content
// lifts the bare single to the default file name before the union.
func TestCombineLiftsSingles(t *testing.T) {
	multi := model.MultiContent{Files: []model.NamedFile{{Name: "a.scala", Text: "A"}}}
	single := model.SingleContent{Text: "S"}

	got := Combine(multi, single).(model.MultiContent)
	assert.Equal(t, []model.NamedFile{
		{Name: "a.scala", Text: "A"},
		{Name: model.DefaultFileName, Text: "S"},
	}, got.Files)
}

// TestCombineUnionOrder verifies filename-keyed union in first-seen
// order: the left side's names first, then the right side's new names,
// with shared names merging bodies left-before-right.
func TestCombineUnionOrder(t *testing.T) {
	a := model.MultiContent{Files: []model.NamedFile{
		{Name: "main.scala", Text: "object Main"},
		{Name: "util.scala", Text: "object Util"},
	}}
	b := model.MultiContent{Files: []model.NamedFile{
		{Name: "util.scala", Text: "extension (s: String)"},
		{Name: "extra.scala", Text: "object Extra"},
	}}

	got := Combine(a, b).(model.MultiContent)
	assert.Equal(t, []model.NamedFile{
		{Name: "main.scala", Text: "object Main"},
		{Name: "util.scala", Text: "object Util\n\nextension (s: String)"},
		{Name: "extra.scala", Text: "object Extra"},
	}, got.Files)
}

// TestCombineFilenameSetCommutes verifies that either fold order yields
// the same filename set, while bodies follow the fold order exactly.
func TestCombineFilenameSetCommutes(t *testing.T) {
	a := model.MultiContent{Files: []model.NamedFile{{Name: "x.scala", Text: "ax"}}}
	b := model.MultiContent{Files: []model.NamedFile{
		{Name: "x.scala", Text: "bx"},
		{Name: "y.scala", Text: "by"},
	}}

	ab := Combine(a, b).(model.MultiContent)
	ba := Combine(b, a).(model.MultiContent)

	names := func(m model.MultiContent) map[string]bool {
		set := map[string]bool{}
		for _, f := range m.Files {
			set[f.Name] = true
		}
		return set
	}
	assert.Equal(t, names(ab), names(ba))

	assert.Equal(t, "ax\n\nbx", ab.Files[0].Text)
	assert.Equal(t, "bx\n\nax", ba.Files[0].Text)
}
