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

package dbprep

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx"

	"github.com/ollij93/griddlers-solver/griddler"
)

// A samplePuzzle pairs the row and column headers of one library
// seed entry.
type samplePuzzle struct {
	rows [][]griddler.Block
	cols [][]griddler.Block
}

func block(v griddler.Value, count int) griddler.Block {
	return griddler.Block{Value: v, Count: count}
}

var (
	fill = griddler.Value(2)
	alt  = griddler.Value(3)
)

// The starter library: small hand-checked puzzles, stored under
// ids the archive will never use, so a fresh install has
// something to solve without network access.
var samplePuzzles = map[int]samplePuzzle{
	// a 3x3 staircase
	2000000001: {
		rows: [][]griddler.Block{
			{block(fill, 1), block(fill, 1)},
			{block(fill, 2)},
			{block(fill, 1)},
		},
		cols: [][]griddler.Block{
			{block(fill, 2)},
			{block(fill, 1)},
			{block(fill, 1), block(fill, 1)},
		},
	},
	// a 5x5 plus sign
	2000000002: {
		rows: [][]griddler.Block{
			{block(fill, 1)},
			{block(fill, 1)},
			{block(fill, 5)},
			{block(fill, 1)},
			{block(fill, 1)},
		},
		cols: [][]griddler.Block{
			{block(fill, 1)},
			{block(fill, 1)},
			{block(fill, 5)},
			{block(fill, 1)},
			{block(fill, 1)},
		},
	},
	// a 2x2 two-color checkerboard
	2000000003: {
		rows: [][]griddler.Block{
			{block(fill, 1), block(alt, 1)},
			{block(alt, 1), block(fill, 1)},
		},
		cols: [][]griddler.Block{
			{block(fill, 1), block(alt, 1)},
			{block(alt, 1), block(fill, 1)},
		},
	},
}

// DataUp loads the starter library into the puzzles table.
// Existing entries with the same ids are refreshed.
func DataUp() error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/griddlers?sslmode=disable"
	}
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return fmt.Errorf("Parse failure on Postgres URI %q: %v", url, err)
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return fmt.Errorf("Couldn't connect to db at %q: %v", url, err)
	}
	defer conn.Close()

	for id, p := range samplePuzzles {
		rows, err := json.Marshal(p.rows)
		if err != nil {
			return fmt.Errorf("Couldn't encode sample puzzle %d rows: %v", id, err)
		}
		cols, err := json.Marshal(p.cols)
		if err != nil {
			return fmt.Errorf("Couldn't encode sample puzzle %d columns: %v", id, err)
		}
		_, err = conn.Exec(
			"insert into puzzles (puzzleId, rowBlocks, colBlocks) values ($1, $2, $3) "+
				"on conflict (puzzleId) do update set rowBlocks = $2, colBlocks = $3;",
			id, string(rows), string(cols))
		if err != nil {
			return fmt.Errorf("Couldn't insert sample puzzle %d: %v", id, err)
		}
	}
	return nil
}
