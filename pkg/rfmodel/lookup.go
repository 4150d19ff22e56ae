package rfmodel

import (
	"slices"
	"sort"
)

// LineIndexForOffset returns the 0-based index of the physical line that
// contains offset. The terminator belongs to its line, and the end of a file
// without a trailing newline belongs to the last line.
func (d *Document) LineIndexForOffset(offset int) (int, bool) {
	if offset < 0 || len(d.Lines) == 0 {
		return 0, false
	}

	idx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].End() > offset
	})
	if idx < len(d.Lines) {
		return idx, offset >= d.Lines[idx].Offset
	}

	last := len(d.Lines) - 1
	if !d.Lines[last].EOL.Terminates() && offset == d.Lines[last].End() {
		return last, true
	}
	return 0, false
}

// Regions returns the source regions covered by the given tokens.
func (d *Document) Regions(ids []TokenID) []FileRegion {
	toks := d.TokensOf(ids)
	slices.SortStableFunc(toks, func(a, b *Token) int {
		return a.Pos.Compare(b.Pos)
	})
	return SplitRegions(toks)
}

// DocumentationRegions returns the regions of the declaration and text of a
// documentation element. Comments interrupting the text split the regions.
func (d *Document) DocumentationRegions(el *Element) []FileRegion {
	ids := make([]TokenID, 0, 1+len(el.Values))
	ids = append(ids, el.Decl)
	ids = append(ids, el.Values...)
	return d.Regions(ids)
}

// DocumentationForOffset returns the Documentation setting or [Documentation]
// local setting whose text spans offset.
func (d *Document) DocumentationForOffset(offset int) (*Element, bool) {
	var found *Element

	d.Walk(func(_ *Section, _, el *Element) bool {
		if el.Decl == NoToken || !d.Kind(el.Decl).IsDocumentation() {
			return true
		}
		if regionsContain(d.DocumentationRegions(el), offset) {
			found = el
			return false
		}
		return true
	})

	return found, found != nil
}

// ElementForOffset returns the innermost element with a token region that
// contains offset.
func (d *Document) ElementForOffset(offset int) (*Element, bool) {
	var found *Element

	d.Walk(func(_ *Section, _, el *Element) bool {
		if regionsContain(d.Regions(el.TokenIDs()), offset) {
			// Keep walking: a body element sharing the line of its
			// definition is more specific.
			found = el
		}
		return true
	})

	return found, found != nil
}

func regionsContain(regions []FileRegion, offset int) bool {
	for _, region := range regions {
		if region.Contains(offset) {
			return true
		}
	}
	return false
}
