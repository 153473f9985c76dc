// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/entry.go
// Summary: Entry extraction from token streams.
// Notes: Two strategies coexist: strict fixed-stride for trusted input and a
// sliding-window scan that re-aligns after stray tokens.

package grid

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Entry designates one grid cell: zero-based coordinates and the character
// that belongs there.
type Entry struct {
	X, Y int
	Ch   rune
}

// Strategy selects how entries are recovered from a token stream.
type Strategy int

const (
	// StrategySliding examines windows of three tokens and, when a window is
	// not a valid (x, char, y) triple, retries one token later. Tolerates
	// stray or missing tokens at the cost of occasional misreads when
	// coordinate-like tokens appear adjacently by coincidence.
	StrategySliding Strategy = iota

	// StrategyFixed consumes the stream in strict strides of three. The
	// token count must be a multiple of three or extraction yields nothing,
	// which callers treat as a failed sanity check.
	StrategyFixed
)

// String returns the config-file name of the strategy.
func (s Strategy) String() string {
	if s == StrategyFixed {
		return "fixed"
	}
	return "sliding"
}

// ParseStrategy maps a config/flag value to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "sliding":
		return StrategySliding, true
	case "fixed":
		return StrategyFixed, true
	}
	return StrategySliding, false
}

// Result carries the extracted entries plus a diagnostic count of rejected
// windows or strides. Skipped never changes the entries themselves.
type Result struct {
	Entries []Entry
	Skipped int
}

// Extract recovers (x, y, char) entries from tokens using the given
// strategy. The caller is expected to have stripped any leading header
// triple. Malformed windows are skipped, never reported as errors; the
// result may be empty.
func Extract(tokens []string, strategy Strategy) Result {
	if strategy == StrategyFixed {
		return extractFixed(tokens)
	}
	return extractSliding(tokens)
}

func extractSliding(tokens []string) Result {
	var res Result
	i := 0
	for i+3 <= len(tokens) {
		x, okX := parseCoord(tokens[i])
		ch, okC := singleRune(tokens[i+1])
		y, okY := parseCoord(tokens[i+2])
		if okX && okC && okY {
			res.Entries = append(res.Entries, Entry{X: x, Y: y, Ch: ch})
			i += 3
			continue
		}
		// Re-align one token later.
		res.Skipped++
		i++
	}
	return res
}

func extractFixed(tokens []string) Result {
	var res Result
	if len(tokens)%3 != 0 {
		return res
	}
	for i := 0; i+3 <= len(tokens); i += 3 {
		x, okX := parseCoord(tokens[i])
		ch, okC := singleRune(tokens[i+1])
		y, okY := parseCoord(tokens[i+2])
		if !okX || !okC || !okY {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, Entry{X: x, Y: y, Ch: ch})
	}
	return res
}

// parseCoord reports whether tok is an optionally-negative integer literal
// and returns its value. Signs other than a single leading '-', empty
// digit strings, and values outside the int range all fail.
func parseCoord(tok string) (int, bool) {
	digits := strings.TrimPrefix(tok, "-")
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// singleRune reports whether tok is exactly one Unicode code point.
// Length is measured in code points, not bytes, so multi-byte characters
// such as "é" qualify. Grapheme clusters built from combining marks do not;
// that semantic question is deliberately left where the source data put it.
func singleRune(tok string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(tok)
	if size == 0 || size != len(tok) {
		return 0, false
	}
	if r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}
