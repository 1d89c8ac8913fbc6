package griddler

/*

segments

*/

// A segment is a maximal run of non-blank cells in a line,
// remembered together with its start offset.  Segments are the
// unit most deduction rules operate on: blanks are hard
// boundaries, so each segment can be analyzed against the block
// sublists that could legally occupy it.
//
// The possible field holds the distinct ordered block sublists
// that occur in at least one valid distribution of the line's
// blocks over its segments.  A singleton possible set is a
// certainty: no valid arrangement puts different blocks in this
// segment.  Segments are recomputed from scratch on every rule
// application; they have no identity across iterations.
type segment struct {
	start    int
	content  Line
	possible [][]Block
}

// decompose splits a line into its segments, scanning left to
// right and closing the current segment at every blank cell.  An
// all-blank line yields no segments.
func decompose(line Line) []segment {
	var segs []segment
	currStart := 0
	for i, val := range line {
		if val == ValBlank {
			if i > currStart {
				segs = append(segs, segment{start: currStart, content: line[currStart:i]})
			}
			currStart = i + 1
		}
	}
	if len(line) > currStart {
		segs = append(segs, segment{start: currStart, content: line[currStart:]})
	}
	return segs
}

/*

assignment resolution

*/

// fits: whether the given blocks could geometrically occupy a
// segment of the given length, counting the mandatory blank
// between same-colored neighbors.
func fits(blocks []Block, length int) bool {
	total := minSpaces(blocks)
	for _, b := range blocks {
		total += b.Count
	}
	return total <= length
}

// placeable reports whether the given blocks have at least one
// concrete placement within the segment content.  A placement is
// compatible with the content where every already-resolved cell
// matches it exactly: cells skipped over must not be filled, and
// cells covered by a block must be unknown or that block's
// color.
func placeable(content Line, blocks []Block) bool {
	if len(blocks) == 0 {
		for _, val := range content {
			if val.isColor() {
				return false
			}
		}
		return true
	}

	block := blocks[0]
	for start := 0; start+block.Count <= len(content); start++ {
		if start > 0 && content[start-1].isColor() {
			// A filled cell can't be left uncovered, so no
			// later start can be valid either.
			break
		}
		matches := true
		for i := start; i < start+block.Count; i++ {
			if content[i] != ValUnknown && content[i] != block.Value {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		rest := content[start+block.Count:]
		if len(blocks) > 1 && blocks[1].Value == block.Value {
			// Same-colored successor: one blank must follow.
			if len(rest) == 0 || rest[0].isColor() {
				continue
			}
			rest = rest[1:]
		}
		if placeable(rest, blocks[1:]) {
			return true
		}
	}
	return false
}

// splitLine decomposes a line into segments and resolves, for
// each segment, the set of block sublists that could occupy it.
// Every order-preserving distribution of the block list over the
// segments is enumerated; a distribution is valid when each
// segment's share both fits its length and is placeable against
// its known content.  Each segment collects the distinct
// sublists it receives across all valid distributions.
func splitLine(blocks []Block, line Line) []segment {
	segs := decompose(line)
	if len(segs) == 0 {
		return segs
	}

	counts := make([]int, len(segs))
	record := func() {
		bi := 0
		for si := range segs {
			sub := blocks[bi : bi+counts[si]]
			bi += counts[si]
			known := false
			for _, p := range segs[si].possible {
				if blocksEqual(p, sub) {
					known = true
					break
				}
			}
			if !known {
				segs[si].possible = append(segs[si].possible, sub)
			}
		}
	}

	var distribute func(si, bi int)
	distribute = func(si, bi int) {
		if si == len(segs) {
			if bi == len(blocks) {
				record()
			}
			return
		}
		for k := len(blocks) - bi; k >= 0; k-- {
			sub := blocks[bi : bi+k]
			if !fits(sub, len(segs[si].content)) {
				continue
			}
			if !placeable(segs[si].content, sub) {
				continue
			}
			counts[si] = k
			distribute(si+1, bi+k)
		}
	}
	distribute(0, 0)

	return segs
}
