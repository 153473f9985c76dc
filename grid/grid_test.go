// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"errors"
	"testing"
)

func TestAssembleSizing(t *testing.T) {
	g, err := Assemble([]Entry{{0, 0, 'a'}, {2, 1, 'b'}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.At(0, 0) != 'a' || g.At(2, 1) != 'b' {
		t.Fatalf("entries not placed")
	}
	if g.At(1, 0) != Blank || g.At(1, 1) != Blank {
		t.Fatalf("untouched cells should hold the blank character")
	}
}

func TestAssembleLastWriteWins(t *testing.T) {
	g, err := Assemble([]Entry{{0, 0, 'a'}, {0, 0, 'b'}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got := g.At(0, 0); got != 'b' {
		t.Fatalf("expected later entry to win, got %q", got)
	}
}

func TestAssembleNoEntries(t *testing.T) {
	if _, err := Assemble(nil); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestAssembleRejectsNegativeCoordinates(t *testing.T) {
	for _, e := range []Entry{{-1, 0, 'a'}, {0, -1, 'a'}} {
		if _, err := Assemble([]Entry{e}); !errors.Is(err, ErrNegativeCoord) {
			t.Fatalf("Assemble(%+v): expected ErrNegativeCoord, got %v", e, err)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g, err := Assemble([]Entry{{0, 0, 'a'}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if g.At(5, 5) != Blank || g.At(-1, 0) != Blank {
		t.Fatalf("out-of-bounds access should return Blank")
	}
}

func TestRowsOrientation(t *testing.T) {
	g, err := Assemble([]Entry{{0, 0, 'a'}, {0, 1, 'b'}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	top := g.Rows(RenderOptions{OriginTop: true})
	if top[0] != "a" || top[1] != "b" {
		t.Fatalf("top-down: got %v", top)
	}
	bottom := g.Rows(RenderOptions{OriginTop: false})
	if bottom[0] != "b" || bottom[1] != "a" {
		t.Fatalf("bottom-up: got %v", bottom)
	}
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	g, err := Assemble([]Entry{{0, 0, '世'}, {1, 0, '界'}})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got := g.DisplayWidth(); got != 4 {
		t.Fatalf("expected display width 4 for two wide runes, got %d", got)
	}
}
