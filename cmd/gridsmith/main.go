// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gridsmith/main.go
// Summary: Command-line front end: resolve, fetch, decode, print or view.
// Usage: Run `gridsmith <doc-url-or-id>` to print the decoded grid.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/softleaf/gridsmith/config"
	"github.com/softleaf/gridsmith/fetch"
	"github.com/softleaf/gridsmith/grid"
	"github.com/softleaf/gridsmith/viewer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.System()

	fs := flag.NewFlagSet("gridsmith", flag.ContinueOnError)
	origin := fs.String("origin", cfg.GetString("render", "origin", "top"), "Row orientation: top (origin top-left) or bottom")
	strategy := fs.String("strategy", cfg.GetString("extract", "strategy", "sliding"), "Extraction strategy: sliding or fixed")
	view := fs.Bool("view", false, "Show the grid on an interactive terminal screen")
	verbose := fs.Bool("verbose", false, "Enable pipeline and fetch diagnostics on stderr")
	useCache := fs.Bool("cache", cfg.GetBool("fetch", "cache_enabled", false), "Cache fetched documents")
	timeout := fs.Duration("timeout", time.Duration(cfg.GetInt("fetch", "timeout_ms", 30000))*time.Millisecond, "Fetch timeout")
	file := fs.String("file", "", "Decode a local file instead of fetching a document")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	d := grid.NewDecoder()
	if s, ok := grid.ParseStrategy(*strategy); ok {
		d.Strategy = s
	} else {
		return fmt.Errorf("unknown strategy %q", *strategy)
	}
	switch *origin {
	case "top":
		d.OriginTop = true
	case "bottom":
		d.OriginTop = false
	default:
		return fmt.Errorf("unknown origin %q", *origin)
	}
	if *verbose {
		fetch.SetVerboseLogging(true)
		d.Trace = log.New(os.Stderr, "grid: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rawText string
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		rawText = string(data)
	} else {
		ref := fs.Arg(0)
		if ref == "" {
			fs.Usage()
			return fmt.Errorf("a document URL or id is required")
		}

		client := fetch.NewClient(*timeout)
		if *useCache {
			path, err := fetch.DefaultCachePath()
			if err != nil {
				return fmt.Errorf("resolve cache path: %w", err)
			}
			cache, err := fetch.OpenCache(path)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer cache.Close()
			client.Cache = cache
		}

		exportURL, err := fetch.ResolveExportURL(ref)
		if err != nil {
			return err
		}
		rawText, err = client.FetchText(ctx, exportURL)
		if err != nil {
			return err
		}

		// Fall back to the HTML export's table cells when the text
		// export yields nothing usable.
		d.Tables = grid.TableCellReaderFunc(func() ([]string, error) {
			htmlURL, err := fetch.ResolveHTMLExportURL(ref)
			if err != nil {
				return nil, err
			}
			body, err := client.FetchText(ctx, htmlURL)
			if err != nil {
				return nil, err
			}
			return fetch.HTMLTableCells(body)
		})
	}

	rows, err := d.Render(rawText, nil)
	if err != nil {
		return err
	}

	if *view {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("-view requires a terminal")
		}
		v, err := viewer.New(rows)
		if err != nil {
			return err
		}
		return v.Run()
	}

	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}
