// Copyright © 2026 Gridsmith contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the gridsmith configuration file.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("render", Section{
		"origin": "top",
	})
	cfg.RegisterDefaults("extract", Section{
		"strategy": "sliding",
	})
	cfg.RegisterDefaults("fetch", Section{
		"cache_enabled": false,
		"timeout_ms":    30000,
	})
}
