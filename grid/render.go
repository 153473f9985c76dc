// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/render.go
// Summary: Serializes an assembled grid to row strings.

package grid

import "github.com/mattn/go-runewidth"

// RenderOptions control how an assembled grid is serialized.
//
// The two orientations mirror the two conventions found in the wild: the
// header-prefixed text export reads top-down, while the HTML table export
// addresses rows from the bottom. Orientation is an explicit choice, never
// inferred from which input path produced the entries. Top-down (origin in
// the top-left corner) is canonical.
type RenderOptions struct {
	OriginTop bool
}

// Rows serializes the grid as one string per row, each row the
// concatenation of its characters left to right.
func (g *Grid) Rows(opts RenderOptions) []string {
	rows := make([]string, 0, len(g.cells))
	if opts.OriginTop {
		for y := 0; y < len(g.cells); y++ {
			rows = append(rows, string(g.cells[y]))
		}
		return rows
	}
	for y := len(g.cells) - 1; y >= 0; y-- {
		rows = append(rows, string(g.cells[y]))
	}
	return rows
}

// DisplayWidth returns the widest row measured in terminal cells rather
// than code points, so East Asian wide characters count as two columns.
func (g *Grid) DisplayWidth() int {
	max := 0
	for _, row := range g.cells {
		w := 0
		for _, r := range row {
			w += runewidth.RuneWidth(r)
		}
		if w > max {
			max = w
		}
	}
	return max
}
