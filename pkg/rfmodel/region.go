package rfmodel

// FileRegion is a contiguous span of source text. End is exclusive for
// slicing but Contains treats both bounds as inclusive, so a caret placed
// right after the last character still belongs to the region.
type FileRegion struct {
	Start FilePosition
	End   FilePosition
}

// Contains reports whether offset lies in [Start.Offset, End.Offset].
func (r FileRegion) Contains(offset int) bool {
	if r.Start.IsNotSet() || r.End.IsNotSet() {
		return false
	}
	return offset >= r.Start.Offset && offset <= r.End.Offset
}

// SplitRegions groups positioned tokens, given in source order, into the
// minimal list of regions. A new region starts whenever a token sits more
// than one physical line below its predecessor, e.g. documentation
// interrupted by a blank or comment line. Unpositioned tokens are skipped.
func SplitRegions(tokens []*Token) []FileRegion {
	var regions []FileRegion
	var prev *Token

	for _, tok := range tokens {
		if tok == nil || tok.Pos.IsNotSet() {
			continue
		}
		if prev == nil || tok.Pos.Line > prev.Pos.Line+1 || tok.Pos.IsBefore(prev.Pos) {
			regions = append(regions, FileRegion{Start: tok.Pos, End: tok.End()})
		} else {
			regions[len(regions)-1].End = tok.End()
		}
		prev = tok
	}

	return regions
}
