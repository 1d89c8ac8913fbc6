package griddler

/*

the brute-force tier

*/

// forEachPlacement calls fn with every line of the given size
// that places the blocks in order with legal spacing: at least
// one blank between same-colored neighbors, any gap (including
// none) where the color changes.  The line passed to fn is a
// shared buffer, only valid for the duration of the call.
func forEachPlacement(blocks []Block, size int, fn func(Line)) {
	buf := make(Line, 0, size)
	var place func(blocks []Block, rest int)
	place = func(blocks []Block, rest int) {
		if len(blocks) == 0 {
			mark := len(buf)
			for i := 0; i < rest; i++ {
				buf = append(buf, ValBlank)
			}
			fn(buf)
			buf = buf[:mark]
			return
		}

		block := blocks[0]
		if block.Count > rest {
			return
		}
		needSpace := len(blocks) > 1 && blocks[1].Value == block.Value
		for spaces := 0; spaces <= rest-block.Count; spaces++ {
			sub := rest - block.Count - spaces
			if needSpace {
				sub--
			}
			if sub < 0 {
				continue
			}
			mark := len(buf)
			for i := 0; i < spaces; i++ {
				buf = append(buf, ValBlank)
			}
			for i := 0; i < block.Count; i++ {
				buf = append(buf, block.Value)
			}
			if needSpace {
				buf = append(buf, ValBlank)
			}
			place(blocks[1:], sub)
			buf = buf[:mark]
		}
	}
	place(blocks, size)
}

// singlePossibleValue is the exhaustive fallback: every legal
// placement of the blocks that is consistent with the known
// cells of the line is generated, and any position that holds
// the same value in all of them is fixed to that value.
// Exponential in the worst case, so the driver only tries it
// when brute force is enabled and nothing cheaper has worked.
func singlePossibleValue(blocks []Block, line Line) Line {
	size := len(line)
	seen := make(Line, size)
	conflicted := make([]bool, size)
	forEachPlacement(blocks, size, func(candidate Line) {
		for i, val := range candidate {
			if line[i] != ValUnknown && line[i] != val {
				return
			}
		}
		for i, val := range candidate {
			switch {
			case seen[i] == ValUnknown:
				seen[i] = val
			case seen[i] != val:
				conflicted[i] = true
			}
		}
	})

	ret := copyLine(line)
	for i := range ret {
		if seen[i] != ValUnknown && !conflicted[i] {
			ret[i] = seen[i]
		}
	}
	return ret
}
