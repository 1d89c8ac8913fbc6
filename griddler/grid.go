package griddler

import (
	"fmt"
)

/*

the grid

*/

// A Grid owns the cell storage for one puzzle together with the
// block specifications of its rows and columns.  Cells live in a
// single flat buffer in row-major order; rows and columns are
// read out as copies and written back cell by cell through one
// setter, which is where the monotonicity invariant is enforced:
// a cell leaves ValUnknown exactly once and never changes again.
type Grid struct {
	rowBlocks [][]Block
	colBlocks [][]Block
	volume    []Value
}

// NewGrid builds an all-unknown grid from the per-row and
// per-column block specifications.  The specification is
// validated up front: every count must be positive, every block
// value a fill color, and every line's blocks must fit its
// length including the mandatory same-color gaps.  The returned
// error identifies the offending line.
func NewGrid(rowBlocks, colBlocks [][]Block) (*Grid, error) {
	check := func(kind string, lines [][]Block, length int) error {
		for i, blocks := range lines {
			name := fmt.Sprintf("%s %d", kind, i)
			need := minSpaces(blocks)
			for _, b := range blocks {
				if !b.Value.isColor() {
					return Error{
						Scope:     LineScope,
						Structure: AttributeValueStructure,
						Attribute: ValueAttribute,
						Condition: GeneralCondition,
						Values:    ErrorData{name, int(b.Value), "Not a fill color"},
					}
				}
				if b.Count < 1 {
					return Error{
						Scope:     LineScope,
						Structure: AttributeValueStructure,
						Attribute: CountAttribute,
						Condition: TooSmallCondition,
						Values:    ErrorData{name, b.Count, 1},
					}
				}
				need += b.Count
			}
			if need > length {
				return Error{
					Scope:     LineScope,
					Structure: ScopeStructure,
					Condition: OverfullCondition,
					Values:    ErrorData{name, need, length},
				}
			}
		}
		return nil
	}
	if err := check("row", rowBlocks, len(colBlocks)); err != nil {
		return nil, err
	}
	if err := check("column", colBlocks, len(rowBlocks)); err != nil {
		return nil, err
	}
	return &Grid{
		rowBlocks: rowBlocks,
		colBlocks: colBlocks,
		volume:    make([]Value, len(rowBlocks)*len(colBlocks)),
	}, nil
}

// Width is the number of columns in the grid.
func (g *Grid) Width() int {
	return len(g.colBlocks)
}

// Height is the number of rows in the grid.
func (g *Grid) Height() int {
	return len(g.rowBlocks)
}

// RowBlocks gives the block specifications of the rows.  The
// result is shared, not copied; callers must treat it as
// read-only.
func (g *Grid) RowBlocks() [][]Block {
	return g.rowBlocks
}

// ColBlocks gives the block specifications of the columns, with
// the same sharing caveat as RowBlocks.
func (g *Grid) ColBlocks() [][]Block {
	return g.colBlocks
}

// Get reads the cell at the given coordinates.
func (g *Grid) Get(x, y int) Value {
	return g.volume[g.Width()*y+x]
}

// Row reads out row y as a fresh line.
func (g *Grid) Row(y int) Line {
	return copyLine(g.volume[g.Width()*y : g.Width()*(y+1)])
}

// Column reads out column x as a fresh line.
func (g *Grid) Column(x int) Line {
	ret := make(Line, g.Height())
	for y := range ret {
		ret[y] = g.volume[g.Width()*y+x]
	}
	return ret
}

// set writes one cell, enforcing the refinement invariant.  A
// write of the current value is a no-op; a write over a
// different concrete value means a deduction rule broke its
// contract, which is fatal.  Reports whether the cell changed.
func (g *Grid) set(x, y int, val Value) (bool, error) {
	old := g.Get(x, y)
	if old == val {
		return false, nil
	}
	if old != ValUnknown {
		return false, Error{
			Scope:     CellScope,
			Structure: ScopeStructure,
			Condition: ConflictCondition,
			Values:    ErrorData{x, y, old, val},
		}
	}
	g.volume[g.Width()*y+x] = val
	return true, nil
}

// hasUnknown: whether any cell of the line is still unresolved.
func hasUnknown(line Line) bool {
	for _, val := range line {
		if val == ValUnknown {
			return true
		}
	}
	return false
}

// Apply runs one rule over every row and then every column of
// the grid, writing any newly resolved cells back into shared
// storage.  Lines with no unknown cells are skipped.  Row writes
// are visible to the column processing within the same call.
// Reports whether any cell changed; an error means the rule
// tried to overwrite a resolved cell, and the grid should be
// considered broken.
func (g *Grid) Apply(rule Rule) (bool, error) {
	progress := false
	for y, blocks := range g.rowBlocks {
		row := g.Row(y)
		if !hasUnknown(row) {
			continue
		}
		out := rule.Apply(blocks, row)
		for x, val := range out {
			if val == ValUnknown {
				continue
			}
			changed, err := g.set(x, y, val)
			if err != nil {
				return progress, err
			}
			if changed {
				progress = true
			}
		}
	}
	for x, blocks := range g.colBlocks {
		col := g.Column(x)
		if !hasUnknown(col) {
			continue
		}
		out := rule.Apply(blocks, col)
		for y, val := range out {
			if val == ValUnknown {
				continue
			}
			changed, err := g.set(x, y, val)
			if err != nil {
				return progress, err
			}
			if changed {
				progress = true
			}
		}
	}
	return progress, nil
}

// Solved reports whether the grid's content realizes its
// specification: the filled runs of every row and every column
// must match their block lists in count, color, and order.  Note
// that "no unknown cells left" is NOT sufficient — an all-filled
// line violating its blocks must not count as solved.
func (g *Grid) Solved() bool {
	for y, blocks := range g.rowBlocks {
		if !blocksEqual(foundToBlocks(countBlocks(g.Row(y))), blocks) {
			return false
		}
	}
	for x, blocks := range g.colBlocks {
		if !blocksEqual(foundToBlocks(countBlocks(g.Column(x))), blocks) {
			return false
		}
	}
	return true
}
