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

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx"

	"github.com/ollij93/griddlers-solver/griddler"
)

// ErrNotFound reports a lookup of a puzzle or solution that isn't
// in the library.
var ErrNotFound = errors.New("not in the puzzle library")

// cache keys and lifetimes
const (
	scriptKeyFormat = "script:%d"
	scriptTTL       = 7 * 24 * 60 * 60 // seconds; the archive rarely changes
)

/*

script cache

*/

// CachedScript looks for the raw archive script of a puzzle in
// the cache.  The second return is false on a cache miss.
func CachedScript(id int) (script string, ok bool, err error) {
	defer errRecover(&err)
	rdExecute(func(tx redis.Conn) error {
		reply, e := redis.String(tx.Do("GET", fmt.Sprintf(scriptKeyFormat, id)))
		if e == redis.ErrNil {
			return nil
		}
		if e != nil {
			return e
		}
		script, ok = reply, true
		return nil
	})
	return
}

// CacheScript remembers the raw archive script of a puzzle.
func CacheScript(id int, script string) (err error) {
	defer errRecover(&err)
	rdExecute(func(tx redis.Conn) error {
		_, e := tx.Do("SETEX", fmt.Sprintf(scriptKeyFormat, id), scriptTTL, script)
		return e
	})
	return
}

/*

puzzle and solution library

*/

// SavePuzzle adds a puzzle to the library, or refreshes it if
// it's already there.
func SavePuzzle(id int, g *griddler.Grid) (err error) {
	defer errRecover(&err)
	rows, e := json.Marshal(g.RowBlocks())
	if e != nil {
		return fmt.Errorf("Couldn't encode puzzle %d rows: %v", id, e)
	}
	cols, e := json.Marshal(g.ColBlocks())
	if e != nil {
		return fmt.Errorf("Couldn't encode puzzle %d columns: %v", id, e)
	}
	pgExecute(func(tx *pgx.Tx) error {
		_, e := tx.Exec(
			"insert into puzzles (puzzleId, rowBlocks, colBlocks) values ($1, $2, $3) "+
				"on conflict (puzzleId) do update set rowBlocks = $2, colBlocks = $3;",
			id, string(rows), string(cols))
		return e
	})
	return
}

// LoadPuzzle reads a puzzle back out of the library as a fresh,
// unsolved grid.  Returns ErrNotFound if the puzzle was never
// saved.
func LoadPuzzle(id int) (g *griddler.Grid, err error) {
	defer errRecover(&err)
	var rows, cols string
	pgExecute(func(tx *pgx.Tx) error {
		e := tx.QueryRow(
			"select rowBlocks, colBlocks from puzzles where puzzleId = $1;",
			id).Scan(&rows, &cols)
		if e == pgx.ErrNoRows {
			return fmt.Errorf("Puzzle %d: %w", id, ErrNotFound)
		}
		return e
	})
	var rowBlocks, colBlocks [][]griddler.Block
	if e := json.Unmarshal([]byte(rows), &rowBlocks); e != nil {
		return nil, fmt.Errorf("Couldn't decode puzzle %d rows: %v", id, e)
	}
	if e := json.Unmarshal([]byte(cols), &colBlocks); e != nil {
		return nil, fmt.Errorf("Couldn't decode puzzle %d columns: %v", id, e)
	}
	return griddler.NewGrid(rowBlocks, colBlocks)
}

// SaveSolution records the rendered solution of a library puzzle.
// The puzzle itself must already have been saved.
func SaveSolution(id int, lines []string) (err error) {
	defer errRecover(&err)
	pgExecute(func(tx *pgx.Tx) error {
		_, e := tx.Exec(
			"insert into solutions (puzzleId, content) values ($1, $2) "+
				"on conflict (puzzleId) do update set content = $2, solvedAt = now();",
			id, strings.Join(lines, "\n"))
		return e
	})
	return
}

// LoadSolution reads back a recorded solution.  Returns
// ErrNotFound if the puzzle was never solved.
func LoadSolution(id int) (lines []string, err error) {
	defer errRecover(&err)
	var content string
	pgExecute(func(tx *pgx.Tx) error {
		e := tx.QueryRow(
			"select content from solutions where puzzleId = $1;",
			id).Scan(&content)
		if e == pgx.ErrNoRows {
			return fmt.Errorf("Solution for puzzle %d: %w", id, ErrNotFound)
		}
		return e
	})
	return strings.Split(content, "\n"), nil
}
