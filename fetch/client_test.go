// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestFetchTextReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("0 A 0"))
	}))
	defer srv.Close()

	body, err := NewClient(0).FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if body != "0 A 0" {
		t.Fatalf("got %q", body)
	}
}

func TestFetchTextStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(0).FetchText(context.Background(), srv.URL)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", statusErr.Code)
	}
}

func TestFetchTextUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("cached body"))
	}))
	defer srv.Close()

	cache, err := OpenCache(filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	c := NewClient(0)
	c.Cache = cache
	for i := 0; i < 3; i++ {
		body, err := c.FetchText(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("FetchText (pass %d): %v", i, err)
		}
		if body != "cached body" {
			t.Fatalf("got %q", body)
		}
	}
	if hits != 1 {
		t.Fatalf("expected a single origin fetch, got %d", hits)
	}
}

func TestCachePutGetDelete(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	if _, ok := cache.Get("u"); ok {
		t.Fatalf("unexpected hit on empty cache")
	}
	if err := cache.Put("u", "one"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.Put("u", "two"); err != nil {
		t.Fatalf("Put (replace): %v", err)
	}
	body, ok := cache.Get("u")
	if !ok || body != "two" {
		t.Fatalf("Get: got (%q,%v)", body, ok)
	}
	if err := cache.Delete("u"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := cache.Get("u"); ok {
		t.Fatalf("expected miss after delete")
	}
}
