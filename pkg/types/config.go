// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and result structs shared between the
// CLI and the internal packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings for network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citemerge/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for fetching wikitext from a MediaWiki site.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on 429/503 responses
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the merge-run history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file (default ".citemerge/history.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// Limit is the default maximum number of runs listed (default 20).
	Limit int `json:"limit" yaml:"limit"`
}
