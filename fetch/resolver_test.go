// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fetch

import (
	"errors"
	"testing"
)

func TestResolveExportURL(t *testing.T) {
	got, err := ResolveExportURL("https://docs.google.com/document/d/ABC123/edit")
	if err != nil {
		t.Fatalf("ResolveExportURL: %v", err)
	}
	want := "https://docs.google.com/document/d/ABC123/export?format=txt"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveHTMLExportURL(t *testing.T) {
	got, err := ResolveHTMLExportURL("https://docs.google.com/document/d/ABC123/edit")
	if err != nil {
		t.Fatalf("ResolveHTMLExportURL: %v", err)
	}
	want := "https://docs.google.com/document/d/ABC123/export?format=html"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDocumentIDAcceptsBareID(t *testing.T) {
	id, err := DocumentID("a_bare-Doc1d")
	if err != nil {
		t.Fatalf("DocumentID: %v", err)
	}
	if id != "a_bare-Doc1d" {
		t.Fatalf("got %q", id)
	}
}

func TestDocumentIDInvalidReference(t *testing.T) {
	for _, ref := range []string{"https://example.com/nothing", "two words", ""} {
		if _, err := DocumentID(ref); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("DocumentID(%q): expected ErrInvalidReference, got %v", ref, err)
		}
	}
}
