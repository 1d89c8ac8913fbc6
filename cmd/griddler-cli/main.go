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

// griddler-cli fetches a puzzle from the griddlers.net archive
// and solves it in the terminal.  Fetched puzzles are cached and
// solutions are recorded when the storage services are up, but
// neither is required for a solve.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ollij93/griddlers-solver/griddler"
	"github.com/ollij93/griddlers-solver/griddlersnet"
	"github.com/ollij93/griddlers-solver/render"
	"github.com/ollij93/griddlers-solver/storage"
)

var (
	debugFlag bool
	bruteFlag bool
	localFlag bool
)

var rootCmd = &cobra.Command{
	Use:          "griddler-cli puzzle-id",
	Short:        "Solve griddler puzzles from the griddlers.net archive",
	Args:         cobra.ExactArgs(1),
	RunE:         runSolve,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false,
		"print the grid after every pass of the rules")
	rootCmd.Flags().BoolVarP(&bruteFlag, "brute-force", "f", false,
		"enable the expensive placement-enumeration rule")
	rootCmd.Flags().BoolVarP(&localFlag, "local", "l", false,
		"solve from the local library only, without fetching")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func printGrid(g *griddler.Grid) {
	for _, line := range render.Lines(g) {
		fmt.Println(line)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("puzzle-id must be a number, got %q", args[0])
	}

	connected := connectStorage()
	if connected {
		defer storage.Close()
	}

	g, err := loadGrid(id, connected)
	if err != nil {
		return err
	}

	opts := griddler.Options{BruteForce: bruteFlag}
	if debugFlag {
		pass := 0
		opts.Trace = func(g *griddler.Grid) {
			pass++
			log.Printf("Pass %d:", pass)
			printGrid(g)
		}
	}
	status, err := griddler.Solve(g, opts)
	if err != nil {
		return fmt.Errorf("Solve of puzzle %d failed: %v", id, err)
	}

	printGrid(g)
	if status != griddler.Solved {
		return fmt.Errorf("No complete solution found for puzzle %d (%v)", id, status)
	}
	log.Printf("Puzzle %d solved.", id)

	if connected {
		if err := storage.SaveSolution(id, gridRows(g)); err != nil {
			log.Printf("Couldn't record solution for puzzle %d: %v", id, err)
		}
	}
	return nil
}

// connectStorage brings up the cache and library.  The services
// are optional for a normal solve, so failure just disables them;
// with --local they're the only puzzle source, so the error
// surfaces later as a failed load.
func connectStorage() bool {
	if _, _, err := storage.Connect(); err != nil {
		log.Printf("Storage unavailable: %v", err)
		return false
	}
	return true
}

// loadGrid finds the puzzle: the local library for --local,
// otherwise the script cache and then the archive itself.
func loadGrid(id int, connected bool) (*griddler.Grid, error) {
	if localFlag {
		if !connected {
			return nil, fmt.Errorf("--local needs the puzzle library")
		}
		g, err := storage.LoadPuzzle(id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("Puzzle %d is not in the local library", id)
		}
		return g, err
	}

	if connected {
		if script, ok, err := storage.CachedScript(id); err == nil && ok {
			g, err := griddlersnet.ParseScript(script)
			if err == nil {
				return g, nil
			}
			log.Printf("Cached script for puzzle %d is unusable: %v", id, err)
		}
	}

	script, err := griddlersnet.FetchScript(id)
	if err != nil {
		return nil, err
	}
	g, err := griddlersnet.ParseScript(script)
	if err != nil {
		return nil, err
	}
	if connected {
		if err := storage.CacheScript(id, script); err != nil {
			log.Printf("Couldn't cache puzzle %d: %v", id, err)
		}
		if err := storage.SavePuzzle(id, g); err != nil {
			log.Printf("Couldn't store puzzle %d: %v", id, err)
		}
	}
	return g, nil
}

func gridRows(g *griddler.Grid) []string {
	rows := make([]string, g.Height())
	for y := range rows {
		rows[y] = g.Row(y).String()
	}
	return rows
}
