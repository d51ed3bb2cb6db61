// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikitext

import "fmt"

// Registry associates citation payloads with their short names. A payload
// is the part enclosed by <ref></ref>. Short names are unique across all
// entries; a registry lives for a single Merge call.
type Registry struct {
	shortNames map[string]string // payload -> short name
	assigned   map[string]string // short name -> payload
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		shortNames: make(map[string]string),
		assigned:   make(map[string]string),
	}
}

// Add records the short name for a payload. It fails if the short name is
// already assigned to a different payload: that indicates a digest
// collision or a pre-existing naming conflict in the article, neither of
// which can be resolved without human judgment.
func (r *Registry) Add(payload, shortName string) error {
	if prev, ok := r.assigned[shortName]; ok && prev != payload {
		return fmt.Errorf("name collision %q: check the article or try adding more hash digits", shortName)
	}
	r.shortNames[payload] = shortName
	r.assigned[shortName] = payload
	return nil
}

// Has reports whether payload is registered. Membership is exact text
// match; one could extend this to URL/DOI detection or to ignore
// whitespace differences.
func (r *Registry) Has(payload string) bool {
	_, ok := r.shortNames[payload]
	return ok
}

// ShortName returns the short name assigned to payload, or "" if the
// payload is unknown.
func (r *Registry) ShortName(payload string) string {
	return r.shortNames[payload]
}
