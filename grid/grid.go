// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/grid.go
// Summary: Grid assembly from extracted entries.

package grid

import (
	"errors"
	"fmt"
)

// Blank fills every cell no entry touches.
const Blank = ' '

var (
	// ErrNoEntries reports that extraction produced zero valid triples.
	// Terminal for the render call, not retryable.
	ErrNoEntries = errors.New("no entries found")

	// ErrNegativeCoord reports an entry with a coordinate below zero. The
	// integer-token test accepts negative literals, so corrupted input can
	// carry them this far; assembly rejects them rather than sizing a grid
	// it cannot index.
	ErrNegativeCoord = errors.New("negative coordinate")
)

// Grid is a 2D character buffer reconstructed from entries. It is rebuilt
// fresh for every render and shares no state across calls.
type Grid struct {
	cells [][]rune
}

// Assemble sizes a grid to cover every entry and places each character at
// its (x, y) cell in list order, so later entries overwrite earlier ones at
// the same coordinate. Untouched cells hold Blank.
func Assemble(entries []Entry) (*Grid, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	maxX, maxY := 0, 0
	for _, e := range entries {
		if e.X < 0 || e.Y < 0 {
			return nil, fmt.Errorf("%w: (%d,%d) %q", ErrNegativeCoord, e.X, e.Y, e.Ch)
		}
		if e.X > maxX {
			maxX = e.X
		}
		if e.Y > maxY {
			maxY = e.Y
		}
	}

	cells := make([][]rune, maxY+1)
	for y := range cells {
		row := make([]rune, maxX+1)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	for _, e := range entries {
		cells[e.Y][e.X] = e.Ch
	}
	return &Grid{cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// At returns the character at (x, y), or Blank when out of bounds.
func (g *Grid) At(x, y int) rune {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return Blank
	}
	return g.cells[y][x]
}
