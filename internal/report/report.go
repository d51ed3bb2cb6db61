// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes merge summaries as YAML files.
package report

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/pkg/types"
)

// Write marshals rep to path as YAML.
func Write(path string, rep types.MergeReport) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a merge report from path.
func Read(path string) (types.MergeReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.MergeReport{}, err
	}
	var rep types.MergeReport
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return types.MergeReport{}, fmt.Errorf("parsing report: %w", err)
	}
	return rep, nil
}
