// griddlers-solver - a griddler (nonogram) puzzle solver.
// Copyright (C) 2021-2022 Olli Johnson.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Package render draws grids as lines of text for the terminal.
// Cells of the first fill color print as a plain '#'; the
// remaining colors print a '#' in the matching terminal color,
// and block prefixes are colored the same way.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ollij93/griddlers-solver/griddler"
)

// The terminal colors for fill values above the first.  The
// first fill color (2) stays uncolored so mono terminals get a
// sensible default.
var valueColors = map[griddler.Value]*color.Color{
	griddler.Value(3): color.New(color.FgRed),
	griddler.Value(4): color.New(color.FgYellow),
	griddler.Value(5): color.New(color.FgGreen),
	griddler.Value(6): color.New(color.FgBlue),
	griddler.Value(7): color.New(color.FgMagenta),
	griddler.Value(8): color.New(color.FgCyan),
	griddler.Value(9): color.New(color.FgHiBlack),
}

// Cell gives the one-character display string for a cell value.
// Values outside the displayable set come out as '?'.
func Cell(v griddler.Value) string {
	switch v {
	case griddler.ValUnknown:
		return "."
	case griddler.ValBlank:
		return " "
	case griddler.Value(2):
		return "#"
	}
	if c, ok := valueColors[v]; ok {
		return c.Sprint("#")
	}
	return "?"
}

// Prefix gives the display string for one block of a line's
// specification: the count right-justified in two columns, in
// the block's color.
func Prefix(b griddler.Block) string {
	s := fmt.Sprintf("%2d", b.Count)
	if c, ok := valueColors[b.Value]; ok {
		return c.Sprint(s)
	}
	return s
}

func prefixes(blocks []griddler.Block) []string {
	ret := make([]string, len(blocks))
	for i, b := range blocks {
		ret[i] = Prefix(b)
	}
	return ret
}

// Lines renders the whole grid: each row's cells followed by its
// comma-joined block prefixes, a separator, then the column
// prefixes below, top-aligned.
func Lines(g *griddler.Grid) []string {
	var ret []string

	for y := 0; y < g.Height(); y++ {
		cells := make([]string, g.Width())
		for x := range cells {
			cells[x] = Cell(g.Get(x, y))
		}
		rowPrefix := strings.Join(prefixes(g.RowBlocks()[y]), ",")
		ret = append(ret, " "+strings.Join(cells, "  ")+"|"+rowPrefix)
	}

	ret = append(ret, strings.Repeat("-", 3*g.Width()))

	colPrefixes := make([][]string, g.Width())
	depth := 0
	for x, blocks := range g.ColBlocks() {
		colPrefixes[x] = prefixes(blocks)
		if len(blocks) > depth {
			depth = len(blocks)
		}
	}
	for h := 0; h < depth; h++ {
		parts := make([]string, g.Width())
		for x := range parts {
			if h < len(colPrefixes[x]) {
				parts[x] = colPrefixes[x][h]
			} else {
				parts[x] = "  "
			}
		}
		ret = append(ret, strings.Join(parts, " ")+"|")
	}

	return ret
}
