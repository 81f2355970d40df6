// group.go implements the multi-file grouper: fragments whose bodies
// declare `// file: <name> - part of <example>` are merged, per example
// name, into one fragment anchored at the earliest location.
package markdown

import (
	"regexp"
	"sort"

	"github.com/MateuszKubuszok/scala-cli-md-spec/internal/model"
)

// fileHeaderRe matches the multi-file header anywhere in a fragment body.
// Capture groups: 1 = declared file name, 2 = example name.
var fileHeaderRe = regexp.MustCompile(`(?m)^// file: (\S+) - part of (\S+)\s*$`)

// FileHeader is one parsed `// file:` declaration.
type FileHeader struct {
	// FileName is the declared name, possibly a nested path.
	FileName string

	// Example is the example name the file belongs to. Fragments with
	// the same example name merge into one multi-file fragment.
	Example string
}

// ParseFileHeader returns the first multi-file header found in body,
// or false when body declares none.
func ParseFileHeader(body string) (FileHeader, bool) {
	m := fileHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return FileHeader{}, false
	}
	return FileHeader{FileName: m[1], Example: m[2]}, true
}

// HasFileHeader reports whether body contains a multi-file header.
// The classifier treats such bodies as runnable even without a
// toolchain directive.
func HasFileHeader(body string) bool {
	return fileHeaderRe.MatchString(body)
}

// GroupMultiFile merges tagged fragments sharing an example name. It is
// the default fragment-list adjustment and runs once per document over
// the full fragment list.
//
// Each contributor is wrapped as a one-file MultiContent whose body is
// prefixed with a hint comment pointing back at the original fence, then
// the group folds left-to-right in document order via Combine, location
// lists concatenating in fold order. The occurrence whose own primary
// location equals the merged fragment's first location is replaced by the
// merged fragment; every other occurrence of the group is dropped.
// Ungrouped fragments pass through unchanged. The final list is sorted by
// the global location ordering.
func GroupMultiFile(fragments []model.Fragment) []model.Fragment {
	type tagged struct {
		index  int
		header FileHeader
	}

	// Collect tagged bare-single fragments per example name,
	// remembering example first-seen order.
	groups := make(map[string][]tagged)
	var order []string
	for i, f := range fragments {
		single, ok := f.Content.(model.SingleContent)
		if !ok {
			continue
		}
		header, ok := ParseFileHeader(single.Text)
		if !ok {
			continue
		}
		if _, seen := groups[header.Example]; !seen {
			order = append(order, header.Example)
		}
		groups[header.Example] = append(groups[header.Example], tagged{index: i, header: header})
	}

	merged := make(map[int]model.Fragment)
	dropped := make(map[int]bool)

	for _, example := range order {
		members := groups[example]

		acc := wrapContributor(fragments[members[0].index], members[0].header)
		for _, member := range members[1:] {
			next := wrapContributor(fragments[member.index], member.header)
			acc = model.Fragment{
				Locations: append(append([]model.Location(nil), acc.Locations...), next.Locations...),
				Content:   Combine(acc.Content, next.Content),
			}
		}

		// Anchor at the occurrence whose own primary location equals
		// the merged fragment's first location; drop the rest.
		anchor := acc.Locations[0]
		for _, member := range members {
			if fragments[member.index].Location() == anchor {
				merged[member.index] = acc
			} else {
				dropped[member.index] = true
			}
		}
	}

	result := make([]model.Fragment, 0, len(fragments))
	for i, f := range fragments {
		if dropped[i] {
			continue
		}
		if m, ok := merged[i]; ok {
			result = append(result, m)
			continue
		}
		result = append(result, f)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Location().Less(result[j].Location())
	})
	return result
}

// wrapContributor lifts one tagged contributor to a one-file MultiContent
// under its declared name, prefixing the body with a comment naming the
// original fence so toolchain diagnostics can be traced back to the docs.
func wrapContributor(f model.Fragment, header FileHeader) model.Fragment {
	single := f.Content.(model.SingleContent)
	body := "// " + f.Location().Hint() + "\n" + single.Text
	return model.Fragment{
		Locations: append([]model.Location(nil), f.Locations...),
		Content: model.MultiContent{Files: []model.NamedFile{
			{Name: header.FileName, Text: body},
		}},
	}
}

// AdjustFragment is a per-fragment customization hook applied after
// extraction and before grouping.
type AdjustFragment func(model.Fragment) model.Fragment

// AdjustFragmentList is a whole-list customization hook applied after all
// per-fragment adjustments.
type AdjustFragmentList func([]model.Fragment) []model.Fragment

// Extractor bundles the extraction pipeline with its two injectable
// adjustment hooks. The zero value uses the identity per-fragment hook
// and GroupMultiFile as the list hook.
type Extractor struct {
	// Fragment adjusts each raw fragment. Nil means identity.
	Fragment AdjustFragment

	// FragmentList adjusts the full per-document fragment list.
	// Nil means GroupMultiFile.
	FragmentList AdjustFragmentList
}

// Fragments extracts doc's raw fragments, applies the per-fragment hook
// to each and the list hook to the result.
func (e Extractor) Fragments(doc Document) []model.Fragment {
	fragments := Extract(doc)

	if e.Fragment != nil {
		for i := range fragments {
			fragments[i] = e.Fragment(fragments[i])
		}
	}

	adjustList := e.FragmentList
	if adjustList == nil {
		adjustList = GroupMultiFile
	}
	return adjustList(fragments)
}
