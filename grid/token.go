// Package grid reconstructs a 2D character grid from a flat record of
// (column, character, row) triples. The pipeline tokenizes raw text,
// recovers coordinate entries with a tolerant scan, optionally falls back
// to a structured table view of the same document, and renders the
// assembled grid as row strings.
package grid

import "strings"

// Tokenize splits raw text into an ordered sequence of whitespace-delimited
// tokens. Runs of whitespace collapse, leading and trailing whitespace is
// ignored, and no token is ever empty. Empty or all-whitespace input yields
// an empty sequence.
func Tokenize(raw string) []string {
	return strings.Fields(raw)
}
