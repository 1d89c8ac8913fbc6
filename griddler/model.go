package griddler

/*

values

*/

// A Value is the content of a single cell in a grid.  Cells
// start out unknown, and solving refines them to either a
// confirmed blank or a fill color.  The fill colors are small
// integers starting at 2, matching the encoding used by the
// puzzle sources we read from.
type Value int

// The two non-color values.  Anything at or above ValFirstColor
// is a fill color.
const (
	ValUnknown Value = iota
	ValBlank
	ValFirstColor
)

// isColor: whether this value is a fill color (as opposed to
// unknown or blank).
func (v Value) isColor() bool {
	return v >= ValFirstColor
}

/*

blocks

*/

// A Block is a required run of Count consecutive cells of the
// same color somewhere in a line.  The ordered list of blocks
// for a line is the line's specification: the blocks must appear
// in order, separated by at least one blank wherever two
// adjacent blocks share a color.  Blocks are never constructed
// with a non-color value or a non-positive count; NewGrid
// enforces this on its inputs.
type Block struct {
	Value Value
	Count int
}

/*

lines

*/

// A Line is the sequence of cell values of one row or column.
// Lines handed to rules are copies: rules return a refined copy
// and the grid decides what to write back.
type Line []Value

// foundBlock records a run of filled cells discovered in a line,
// along with the index at which the run starts.
type foundBlock struct {
	start int
	block Block
}

// countBlocks scans a line and returns the runs of filled cells
// it currently contains, in order.  Unknown and blank cells
// terminate runs and are otherwise ignored.
func countBlocks(line Line) []foundBlock {
	var ret []foundBlock
	if len(line) == 0 {
		return ret
	}
	curr, count := line[0], 0
	for i, val := range line {
		if val != curr {
			if curr.isColor() {
				ret = append(ret, foundBlock{i - count, Block{curr, count}})
			}
			curr, count = val, 0
		}
		count++
	}
	if curr.isColor() {
		ret = append(ret, foundBlock{len(line) - count, Block{curr, count}})
	}
	return ret
}

// foundToBlocks strips the start indices from a countBlocks
// result, leaving just the ordered block list.
func foundToBlocks(found []foundBlock) []Block {
	blocks := make([]Block, len(found))
	for i, f := range found {
		blocks[i] = f.block
	}
	return blocks
}

// blocksEqual: element-wise comparison of two block lists.
func blocksEqual(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// copyLine returns a copy of a line.
func copyLine(line Line) Line {
	ret := make(Line, len(line))
	copy(ret, line)
	return ret
}

// reverseLine returns a reversed copy of a line.
func reverseLine(line Line) Line {
	ret := make(Line, len(line))
	for i, val := range line {
		ret[len(line)-1-i] = val
	}
	return ret
}

// reverseBlocks returns a reversed copy of a block list.
func reverseBlocks(blocks []Block) []Block {
	ret := make([]Block, len(blocks))
	for i, b := range blocks {
		ret[len(blocks)-1-i] = b
	}
	return ret
}

// minSpaces computes the minimum number of blank cells that must
// separate the given blocks: one for every adjacent pair that
// shares a color, none where the color changes.
func minSpaces(blocks []Block) int {
	spaces := 0
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Value == blocks[i-1].Value {
			spaces++
		}
	}
	return spaces
}
