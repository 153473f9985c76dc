// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fetch/resolver.go
// Summary: Turns document references into export URLs.

// Package fetch retrieves coordinate-table documents. It resolves loose
// document references into export URLs, fetches their bodies over HTTP with
// an optional sqlite-backed cache, and extracts table cells from HTML
// exports for the structured fallback path.
package fetch

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidReference reports that no document id could be found in a
// reference. Fatal for the whole run; nothing downstream can proceed
// without a document.
var ErrInvalidReference = errors.New("no document id in reference")

var (
	docIDPattern  = regexp.MustCompile(`/d/([\w-]+)`)
	bareIDPattern = regexp.MustCompile(`^[\w-]+$`)
)

// DocumentID extracts the document id from a reference. Both full document
// URLs (anything containing a "/d/<id>" segment) and bare ids are accepted.
func DocumentID(ref string) (string, error) {
	if m := docIDPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
}

// ResolveExportURL converts a document reference to its plain-text export
// URL, the primary input of the decode pipeline.
func ResolveExportURL(ref string) (string, error) {
	id, err := DocumentID(ref)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://docs.google.com/document/d/%s/export?format=txt", id), nil
}

// ResolveHTMLExportURL converts a document reference to its HTML export
// URL, the structured representation consulted by the fallback extractor.
func ResolveHTMLExportURL(ref string) (string, error) {
	id, err := DocumentID(ref)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://docs.google.com/document/d/%s/export?format=html", id), nil
}
