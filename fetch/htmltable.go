// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fetch/htmltable.go
// Summary: Row-major table cell extraction from HTML exports.

package fetch

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLTableCells parses an HTML document and returns the trimmed text of
// every table cell in reading order (row-major, <th> and <td> alike).
// Documents without tables yield an empty slice, not an error.
func HTMLTableCells(rawHTML string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var cells []string
	collectCells(root, &cells)
	return cells, nil
}

func collectCells(n *html.Node, cells *[]string) {
	if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
		*cells = append(*cells, strings.TrimSpace(textContent(n)))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectCells(c, cells)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
