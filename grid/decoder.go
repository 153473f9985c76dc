// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/decoder.go
// Summary: The decode pipeline: tokenize, extract, fall back, assemble, render.
// Usage: Construct with NewDecoder, then call Render once per document.

package grid

import "log"

// headerLen is the size of the leading header triple
// ("x-coordinate", "Character", "y-coordinate") both token streams and
// structured cell sequences carry.
const headerLen = 3

// TableCellReader supplies a structured, cell-oriented view of the source
// document: every table cell's trimmed text in row-major order. It is
// consulted only when token extraction yields nothing. A nil reader means
// the capability is absent and the fallback contributes nothing.
type TableCellReader interface {
	Cells() ([]string, error)
}

// TableCellReaderFunc adapts a function to the TableCellReader interface.
type TableCellReaderFunc func() ([]string, error)

// Cells calls f.
func (f TableCellReaderFunc) Cells() ([]string, error) { return f() }

// Decoder runs the whole pipeline. The zero value is not useful; use
// NewDecoder, which installs the canonical defaults (sliding-window
// extraction, top-down rendering), then override fields as needed. A
// Decoder holds no per-call state and may be reused across documents.
type Decoder struct {
	Strategy  Strategy
	OriginTop bool

	// Tables is the optional structured-source fallback capability.
	Tables TableCellReader

	// Trace receives per-stage diagnostics when non-nil. The pipeline
	// never writes anywhere else.
	Trace *log.Logger
}

// NewDecoder returns a Decoder with canonical defaults.
func NewDecoder() *Decoder {
	return &Decoder{Strategy: StrategySliding, OriginTop: true}
}

// Render reconstructs the grid hidden in rawText and returns its rows.
//
// structuredCells, when non-nil, is a pre-extracted row-major cell sequence
// from a structured parse of the same document; it feeds the fallback path
// when token extraction recovers nothing. When structuredCells is nil the
// fallback consults d.Tables instead, if present.
//
// Returns ErrNoEntries when neither path recovers a single valid triple.
func (d *Decoder) Render(rawText string, structuredCells []string) ([]string, error) {
	tokens := Tokenize(rawText)
	d.tracef("tokenized %d tokens", len(tokens))

	res := Extract(stripHeader(tokens), d.Strategy)
	d.tracef("primary extraction: %d entries, %d skipped windows", len(res.Entries), res.Skipped)

	if len(res.Entries) == 0 {
		res = d.fallback(structuredCells)
	}
	if len(res.Entries) == 0 {
		return nil, ErrNoEntries
	}

	g, err := Assemble(res.Entries)
	if err != nil {
		return nil, err
	}
	d.tracef("assembled %dx%d grid", g.Width(), g.Height())
	return g.Rows(RenderOptions{OriginTop: d.OriginTop}), nil
}

// fallback re-runs the sliding-window scan over structured table cells.
// The fallback always scans with the tolerant strategy regardless of
// d.Strategy: by the time it runs, the input has already proven noisy.
func (d *Decoder) fallback(cells []string) Result {
	if cells == nil && d.Tables != nil {
		var err error
		cells, err = d.Tables.Cells()
		if err != nil {
			d.tracef("table cell reader failed: %v", err)
			return Result{}
		}
	}
	if len(cells) == 0 {
		return Result{}
	}
	d.tracef("fallback extraction over %d table cells", len(cells))
	res := Extract(stripHeader(cells), StrategySliding)
	d.tracef("fallback extraction: %d entries, %d skipped windows", len(res.Entries), res.Skipped)
	return res
}

func stripHeader(tokens []string) []string {
	if len(tokens) <= headerLen {
		return nil
	}
	return tokens[headerLen:]
}

func (d *Decoder) tracef(format string, args ...interface{}) {
	if d.Trace != nil {
		d.Trace.Printf(format, args...)
	}
}
