// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: viewer/viewer.go
// Summary: Interactive terminal display for a decoded grid.
// Usage: Construct with New (or pass a screen for tests) and call Run.

// Package viewer draws a decoded grid on a tcell screen, centered and
// display-width aware, until the user quits with q, ESC or Ctrl-C.
package viewer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Viewer owns one tcell screen for the duration of a Run.
type Viewer struct {
	screen tcell.Screen
	rows   []string
}

// New creates a viewer for the given rendered rows on a fresh terminal
// screen.
func New(rows []string) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, rows), nil
}

// NewWithScreen wraps an existing screen. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen, rows []string) *Viewer {
	return &Viewer{screen: screen, rows: rows}
}

// Run initializes the screen, draws the grid and blocks until the user
// quits. The screen is finalized before returning.
func (v *Viewer) Run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()
	v.screen.HideCursor()

	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case nil:
			return nil
		}
	}
}

// draw clears the screen and blits the grid centered on it.
func (v *Viewer) draw() {
	v.screen.Clear()
	sw, sh := v.screen.Size()

	gw := 0
	for _, row := range v.rows {
		if w := runewidth.StringWidth(row); w > gw {
			gw = w
		}
	}
	x0 := (sw - gw) / 2
	y0 := (sh - len(v.rows)) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	style := tcell.StyleDefault
	for dy, row := range v.rows {
		x := x0
		for _, r := range row {
			v.screen.SetContent(x, y0+dy, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
	v.screen.Show()
}
