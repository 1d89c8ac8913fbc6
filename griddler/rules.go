package griddler

/*

the rule library

*/

// An Algorithm is one deduction rule: a pure function from a
// line's target blocks and current content to a refined copy of
// the content.  Algorithms only ever change unknown cells, and
// any cell they resolve must be logically forced; the grid
// treats a violation of this as a fatal internal fault.
type Algorithm func(blocks []Block, line Line) Line

// A Rule is a named algorithm in the solver's library.  Brute
// marks the exhaustive tier, which the driver only tries when
// explicitly enabled.
type Rule struct {
	Name  string
	Apply Algorithm
	Brute bool
}

// Rules returns the rule library in driver priority order:
// cheap structural checks first, the combinatorial segment rules
// next, and the brute-force tier last.
func Rules() []Rule {
	return []Rule{
		{Name: "Complete runs", Apply: completeRuns},
		{Name: "Empty sections", Apply: segmentAlgorithm(emptySections)},
		{Name: "Complete segments", Apply: segmentAlgorithm(completeSegments)},
		{Name: "Fill overlap", Apply: segmentAlgorithm(fillOverlap)},
		{Name: "Surround complete", Apply: fixpoint(segmentAlgorithm(surroundComplete))},
		{Name: "Fill between single", Apply: segmentAlgorithm(fillBetweenSingle)},
		{Name: "Stretch first", Apply: segmentAlgorithm(stretchFirst)},
		{Name: "Stretch last", Apply: reversed(segmentAlgorithm(stretchFirst))},
		{Name: "Inverse stretch first", Apply: segmentAlgorithm(inverseStretchFirst)},
		{Name: "Inverse stretch last", Apply: reversed(segmentAlgorithm(inverseStretchFirst))},
		{Name: "Single possible value", Apply: singlePossibleValue, Brute: true},
	}
}

/*

combinators

*/

// segmentAlgorithm lifts a per-segment rule to a whole-line
// algorithm: the line is decomposed, the block sublists are
// resolved per segment, and each segment's refinement is written
// back at its offset.
func segmentAlgorithm(method func(segment) Line) Algorithm {
	return func(blocks []Block, line Line) Line {
		ret := copyLine(line)
		for _, seg := range splitLine(blocks, line) {
			out := method(seg)
			for i, val := range out {
				ret[seg.start+i] = val
			}
		}
		return ret
	}
}

// fixpoint iterates an algorithm until its output stops
// changing.  A rule that places blanks re-segments the line for
// itself: the new boundary can complete a run the rule couldn't
// attribute before, so a single application isn't always a fixed
// point of the rule.  Iteration preserves monotonicity, since
// each step only resolves unknown cells.
func fixpoint(algo Algorithm) Algorithm {
	return func(blocks []Block, line Line) Line {
		ret := algo(blocks, line)
		for {
			next := algo(blocks, ret)
			changed := false
			for i := range next {
				if next[i] != ret[i] {
					changed = true
					break
				}
			}
			if !changed {
				return ret
			}
			ret = next
		}
	}
}

// reversed derives the mirror of an algorithm: reverse the
// blocks and the line, apply the forward rule, and reverse the
// result back.  The "last" variants of the stretch rules are
// built this way rather than implemented twice.
func reversed(algo Algorithm) Algorithm {
	return func(blocks []Block, line Line) Line {
		return reverseLine(algo(reverseBlocks(blocks), reverseLine(line)))
	}
}

// certainFirst reports the block that starts every possible
// assignment of a segment, if all assignments are non-empty and
// agree on their first block.
func certainFirst(possible [][]Block) (Block, bool) {
	if len(possible) == 0 {
		return Block{}, false
	}
	for _, p := range possible {
		if len(p) == 0 || p[0] != possible[0][0] {
			return Block{}, false
		}
	}
	return possible[0][0], true
}

/*

whole-line rules

*/

// completeRuns blanks the remaining unknowns of a line whose
// filled runs already exactly realize the target blocks.
func completeRuns(blocks []Block, line Line) Line {
	ret := copyLine(line)
	if !blocksEqual(foundToBlocks(countBlocks(line)), blocks) {
		return ret
	}
	for i, val := range ret {
		if val == ValUnknown {
			ret[i] = ValBlank
		}
	}
	return ret
}

/*

segment rules

*/

// emptySections blanks an all-unknown segment whose only
// possible assignment is the empty one: no block can go here.
func emptySections(seg segment) Line {
	ret := copyLine(seg.content)
	if len(seg.possible) != 1 || len(seg.possible[0]) != 0 {
		return ret
	}
	for _, val := range seg.content {
		if val != ValUnknown {
			return ret
		}
	}
	for i := range ret {
		ret[i] = ValBlank
	}
	return ret
}

// completeSegments blanks the remaining unknowns of a segment
// whose content already realizes its one possible assignment.
func completeSegments(seg segment) Line {
	ret := copyLine(seg.content)
	if len(seg.possible) != 1 {
		return ret
	}
	if !blocksEqual(foundToBlocks(countBlocks(seg.content)), seg.possible[0]) {
		return ret
	}
	for i, val := range ret {
		if val == ValUnknown {
			ret[i] = ValBlank
		}
	}
	return ret
}

// fillOverlap fills the cells of a segment that its certain
// assignment covers under both extreme placements.  For each
// block the earliest start packs all earlier blocks to the left
// and the latest end packs all later blocks to the right; the
// cells common to both placements are forced.
func fillOverlap(seg segment) Line {
	ret := copyLine(seg.content)
	if len(seg.possible) != 1 {
		return ret
	}
	blocks := seg.possible[0]
	for bi, block := range blocks {
		possibleStart := minSpaces(blocks[:bi+1])
		for _, b := range blocks[:bi] {
			possibleStart += b.Count
		}
		possibleEnd := len(seg.content) - 1 - minSpaces(blocks[bi:])
		for _, b := range blocks[bi+1:] {
			possibleEnd -= b.Count
		}
		for i := possibleEnd - block.Count + 1; i <= possibleStart+block.Count-1; i++ {
			ret[i] = block.Value
		}
	}
	return ret
}

// surroundComplete blanks the neighbors of filled runs that are
// necessarily complete blocks: a run is complete when its length
// equals the largest count among same-colored blocks in the
// segment's certain assignment.  The blank is only forced on a
// side where the neighboring block (or the segment boundary)
// shares the run's color.
func surroundComplete(seg segment) Line {
	ret := copyLine(seg.content)
	if len(seg.possible) != 1 {
		return ret
	}
	segBlocks := seg.possible[0]
	if len(segBlocks) == 0 {
		return ret
	}

	for _, found := range countBlocks(seg.content) {
		maxCount := 0
		for _, b := range segBlocks {
			if b.Value == found.block.Value && b.Count > maxCount {
				maxCount = b.Count
			}
		}
		if maxCount == 0 || found.block.Count != maxCount {
			continue
		}

		// Figure out which of the assignment's blocks this run
		// is.  With several same-sized candidates of mixed
		// colors there is no way to tell which instance we are
		// looking at, so leave those alone (known limitation).
		var sbis []int
		for i, b := range segBlocks {
			if b == found.block {
				sbis = append(sbis, i)
			}
		}
		if len(sbis) == 0 {
			continue
		}
		if len(sbis) > 1 {
			mixed := false
			for _, b := range segBlocks {
				if b.Value != segBlocks[0].Value {
					mixed = true
					break
				}
			}
			if mixed {
				continue
			}
		}
		sbi := sbis[0]

		idx := found.start
		if idx > 0 && (sbi == 0 || segBlocks[sbi-1].Value == found.block.Value) {
			ret[idx-1] = ValBlank
		}
		if idx+found.block.Count < len(seg.content) &&
			(sbi == len(segBlocks)-1 || segBlocks[sbi+1].Value == found.block.Value) {
			ret[idx+found.block.Count] = ValBlank
		}
	}
	return ret
}

// fillBetweenSingle joins up the filled cells of a segment whose
// certain assignment is a single block: being one contiguous
// run, the block must span everything between its known
// endpoints.
func fillBetweenSingle(seg segment) Line {
	ret := copyLine(seg.content)
	if len(seg.possible) != 1 || len(seg.possible[0]) != 1 {
		return ret
	}
	block := seg.possible[0][0]

	first, last := -1, -1
	for i, val := range seg.content {
		if val != ValUnknown {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || last == first {
		return ret
	}
	for i := first; i <= last; i++ {
		ret[i] = block.Value
	}
	return ret
}

// stretchFirst extends the first block of a segment from its
// boundary: when every possible assignment starts with the same
// block and that block has visibly started within its first
// Count cells, everything from the first sighting through cell
// Count-1 must be part of it.
func stretchFirst(seg segment) Line {
	ret := copyLine(seg.content)
	block, ok := certainFirst(seg.possible)
	if !ok {
		return ret
	}
	filling := false
	for i := 0; i < block.Count && i < len(seg.content); i++ {
		if seg.content[i] == block.Value {
			filling = true
		}
		if filling {
			ret[i] = block.Value
		}
	}
	return ret
}

// inverseStretchFirst blanks the cells the first block can no
// longer reach: when the first block is certain and already
// visible near the boundary, the run it belongs to fixes the
// latest position it can start, and everything before that is
// blank.
func inverseStretchFirst(seg segment) Line {
	ret := copyLine(seg.content)
	block, ok := certainFirst(seg.possible)
	if !ok {
		return ret
	}

	limit := block.Count + 1
	if limit > len(seg.content) {
		limit = len(seg.content)
	}
	found := -1
	for i := 0; i < limit; i++ {
		if seg.content[i] == block.Value {
			found = i
			break
		}
	}
	if found < 0 {
		return ret
	}

	end := found
	for end < len(seg.content) && seg.content[end] == block.Value {
		end++
	}
	for i := 0; i < end-block.Count; i++ {
		ret[i] = ValBlank
	}
	return ret
}
