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

package griddler

import (
	"strings"
)

/*

Print forms of cell values

*/

var (
	valueRunes   = []rune{'.', ' ', '#', '%'}
	bigValueRune = '?'
)

func vrune(v Value) rune {
	if int(v) < len(valueRunes) {
		return valueRunes[v]
	}
	return bigValueRune
}

// String gives the one-character form of a value: the same
// glyphs Line.String uses.
func (v Value) String() string {
	return string(vrune(v))
}

// String gives the one-character-per-cell form of a line:
// unknown cells print as '.', blanks as ' ', the first two
// colors as '#' and '%'.  This is the inverse of ParseLine for
// those values, and is what the tests and debug logs use.
func (l Line) String() string {
	var sb strings.Builder
	for _, val := range l {
		sb.WriteRune(vrune(val))
	}
	return sb.String()
}

// ParseLine decodes a one-character-per-cell line string as
// produced by Line.String.  Unrecognized characters decode as
// unknown cells.
func ParseLine(s string) Line {
	ret := make(Line, 0, len(s))
	for _, r := range s {
		switch r {
		case ' ':
			ret = append(ret, ValBlank)
		case '#':
			ret = append(ret, Value(2))
		case '%':
			ret = append(ret, Value(3))
		default:
			ret = append(ret, ValUnknown)
		}
	}
	return ret
}
