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

// Package griddlersnet fetches puzzle definitions from the
// griddlers.net puzzle archive and turns them into grids.
//
// The site serves each puzzle as a javascript fragment containing a
// "var puzzle = {...}" object literal.  That object is not JSON, so
// rather than parsing it wholesale we scan out the two header
// attributes we need, which are plain nested arrays of integers.
package griddlersnet

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ollij93/griddlers-solver/griddler"
)

// baseURL is the resource endpoint that serves puzzle scripts.  A
// variable so the tests can point it at a local server.
var baseURL = "https://www.griddlers.net/nonogram/-/g/t1632255045917/i01"

const queryFormat = "p_p_lifecycle=2" +
	"&p_p_resource_id=griddlerPuzzle" +
	"&p_p_cacheability=cacheLevelPage" +
	"&_gpuzzles_WAR_puzzles_id=%d" +
	"&_gpuzzles_WAR_puzzles_lite=false"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FetchScript retrieves the raw puzzle script for the puzzle with
// the given archive index.
func FetchScript(id int) (string, error) {
	url := fmt.Sprintf("%s?"+queryFormat, baseURL, id)
	resp, err := httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("Couldn't fetch puzzle %d: %v", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Puzzle fetch for %d gave status %v", id, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("Couldn't read puzzle %d response: %v", id, err)
	}
	return string(body), nil
}

// extractPuzzle pulls the body of the "var puzzle = {...}" object
// literal out of the script.  The closing brace sits alone at the
// start of a line.
func extractPuzzle(script string) (string, error) {
	lines := strings.Split(script, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "var puzzle = {") {
			start = i
			break
		}
	}
	if start < 0 {
		return "", griddler.Error{
			Scope:     griddler.ArgumentScope,
			Structure: griddler.ScopeStructure,
			Condition: griddler.GeneralCondition,
			Values:    griddler.ErrorData{"No puzzle definition in script"},
		}
	}
	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "}") {
			end = i
			break
		}
	}
	if end < 0 {
		return "", griddler.Error{
			Scope:     griddler.ArgumentScope,
			Structure: griddler.ScopeStructure,
			Condition: griddler.GeneralCondition,
			Values:    griddler.ErrorData{"Puzzle definition never closed"},
		}
	}
	return strings.Join(lines[start+1:end], "\n"), nil
}

// extractHeader finds the named attribute in the puzzle body and
// decodes its nested-array value.  The value is a list of lines,
// each a list of [color, count] pairs.
func extractHeader(puzzle, key string) ([][][]int, error) {
	_, rest, found := strings.Cut(puzzle, key+":")
	if !found {
		return nil, griddler.Error{
			Scope:     griddler.ArgumentScope,
			Structure: griddler.ScopeStructure,
			Condition: griddler.GeneralCondition,
			Values:    griddler.ErrorData{fmt.Sprintf("Puzzle has no %v attribute", key)},
		}
	}
	rest = strings.TrimLeft(rest, " \t")
	if len(rest) == 0 || rest[0] != '[' {
		return nil, griddler.Error{
			Scope:     griddler.ArgumentScope,
			Structure: griddler.ScopeStructure,
			Condition: griddler.GeneralCondition,
			Values:    griddler.ErrorData{fmt.Sprintf("Puzzle %v attribute is not an array", key)},
		}
	}

	depth, end := 0, -1
scan:
	for i, c := range rest {
		switch {
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				end = i
				break scan
			}
		case c >= '0' && c <= '9', c == ',', c == ' ', c == '\n', c == '\t':
		default:
			return nil, griddler.Error{
				Scope:     griddler.ArgumentScope,
				Structure: griddler.ScopeStructure,
				Condition: griddler.GeneralCondition,
				Values:    griddler.ErrorData{fmt.Sprintf("Unexpected %q in %v attribute", c, key)},
			}
		}
	}
	if end < 0 {
		return nil, griddler.Error{
			Scope:     griddler.ArgumentScope,
			Structure: griddler.ScopeStructure,
			Condition: griddler.GeneralCondition,
			Values:    griddler.ErrorData{fmt.Sprintf("Puzzle %v attribute never closed", key)},
		}
	}

	var header [][][]int
	if err := json.Unmarshal([]byte(rest[:end+1]), &header); err != nil {
		return nil, fmt.Errorf("Couldn't decode %v attribute: %v", key, err)
	}
	return header, nil
}

func toBlocks(header [][][]int, kind string) ([][]griddler.Block, error) {
	ret := make([][]griddler.Block, len(header))
	for i, entry := range header {
		blocks := make([]griddler.Block, len(entry))
		for j, pair := range entry {
			if len(pair) < 2 {
				return nil, griddler.Error{
					Scope:     griddler.LineScope,
					Structure: griddler.AttributeStructure,
					Attribute: griddler.BlocksAttribute,
					Condition: griddler.GeneralCondition,
					Values:    griddler.ErrorData{fmt.Sprintf("%v %d", kind, i), "Header entry is not a [color, count] pair"},
				}
			}
			blocks[j] = griddler.Block{Value: griddler.Value(pair[0]), Count: pair[1]}
		}
		ret[i] = blocks
	}
	return ret, nil
}

// ToGrid builds a grid from a puzzle's top (column) and left (row)
// headers.
func ToGrid(top, left [][][]int) (*griddler.Grid, error) {
	cols, err := toBlocks(top, "column")
	if err != nil {
		return nil, err
	}
	rows, err := toBlocks(left, "row")
	if err != nil {
		return nil, err
	}
	return griddler.NewGrid(rows, cols)
}

// ParseScript turns a raw puzzle script into a grid.
func ParseScript(script string) (*griddler.Grid, error) {
	puzzle, err := extractPuzzle(script)
	if err != nil {
		return nil, err
	}
	top, err := extractHeader(puzzle, "topHeader")
	if err != nil {
		return nil, err
	}
	left, err := extractHeader(puzzle, "leftHeader")
	if err != nil {
		return nil, err
	}
	return ToGrid(top, left)
}

// GetGrid fetches and parses the puzzle with the given archive
// index.
func GetGrid(id int) (*griddler.Grid, error) {
	script, err := FetchScript(id)
	if err != nil {
		return nil, err
	}
	return ParseScript(script)
}
