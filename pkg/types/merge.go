// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// MergeReport summarizes one merge run for the --report output file.
type MergeReport struct {
	// Source labels where the article came from: a file path, a wiki
	// page URL, or "stdin".
	Source string `json:"source" yaml:"source"`

	// MergeCount is the number of refs replaced by back-references.
	MergeCount int `json:"merge_count" yaml:"merge_count"`

	// Duplicates lists the distinct duplicated payloads, sorted.
	Duplicates []string `json:"duplicates" yaml:"duplicates"`

	// InputBytes and OutputBytes are the article sizes before and after.
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`
}

// RunRecord is one row of the merge-run history store.
type RunRecord struct {
	ID          int64     `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	MergeCount  int       `json:"merge_count" yaml:"merge_count"`
	Duplicates  []string  `json:"duplicates" yaml:"duplicates"`
	InputBytes  int       `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int       `json:"output_bytes" yaml:"output_bytes"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}
