// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikitext merges duplicated <ref> citations in wiki source text.
// A first pass finds every payload that occurs more than once and fixes a
// short name for each; a second pass rewrites the article, keeping the
// first occurrence as the named definition and replacing later ones with
// self-closing back-references.
package wikitext

import (
	"fmt"
	"sort"
	"strings"
)

// Result holds the outcome of a merge.
type Result struct {
	// Article is the rewritten wiki source.
	Article string

	// Merged counts the occurrences replaced by back-references.
	Merged int

	// Duplicates lists the distinct duplicated payloads, sorted.
	Duplicates []string
}

// HasDuplicates reports whether any duplicated payloads were found.
func (r Result) HasDuplicates() bool {
	return len(r.Duplicates) > 0
}

// scanDuplicates walks the article once, registering a short name for each
// payload on its first occurrence and collecting payloads seen more than
// once. Explicit name attributes win over generated names, so an already
// named ref keeps its name for later back-references.
func scanDuplicates(article string, reg *Registry) (map[string]bool, error) {
	duplicated := make(map[string]bool)
	idx := 0
	for {
		ref, ok := nextRef(article, idx)
		if !ok {
			break
		}
		idx = ref.End

		if reg.Has(ref.Payload) {
			duplicated[ref.Payload] = true
			continue
		}
		shortName, ok := ref.NameAttr()
		if !ok {
			shortName = GenerateShortName(ref.Payload)
		}
		if err := reg.Add(ref.Payload, shortName); err != nil {
			return nil, err
		}
	}
	return duplicated, nil
}

// Merge rewrites duplicated refs in wiki source code and returns the new
// article together with the merge count and the duplicated payloads.
//
// There are five kinds of refs; the 2nd and 5th get merged:
//  1. no name, unique payload: <ref>a</ref>
//  2. no name, duplicated payload: <ref>a</ref><ref>a</ref>
//  3. name without payload (skipped): <ref name="n" />
//  4. name with unique payload: <ref name="n">a</ref>
//  5. name with duplicated payload: <ref name="n">a</ref><ref name="n">a</ref>
//
// Merge is pure: no I/O, and all state is local to the call.
func Merge(article string) (Result, error) {
	reg := NewRegistry()
	duplicated, err := scanDuplicates(article, reg)
	if err != nil {
		return Result{}, err
	}

	var out strings.Builder
	out.Grow(len(article))
	seen := make(map[string]bool)
	merged := 0
	idx := 0
	for {
		ref, ok := nextRef(article, idx)
		if !ok {
			break
		}
		out.WriteString(article[idx:ref.Start])
		idx = ref.End

		if !duplicated[ref.Payload] {
			// Unique payloads pass through untouched.
			out.WriteString(ref.Text(article))
			continue
		}

		if seen[ref.Payload] {
			fmt.Fprintf(&out, `<ref name="%s" />`, reg.ShortName(ref.Payload))
			merged++
			continue
		}

		// First emission of a duplicated payload becomes the named
		// definition; a ref that already carries a name keeps it.
		if ref.HasName() {
			out.WriteString(ref.Text(article))
		} else {
			fmt.Fprintf(&out, `<ref name="%s">%s</ref>`, reg.ShortName(ref.Payload), ref.Payload)
		}
		seen[ref.Payload] = true
	}
	out.WriteString(article[idx:])

	dups := make([]string, 0, len(duplicated))
	for p := range duplicated {
		dups = append(dups, p)
	}
	sort.Strings(dups)

	return Result{Article: out.String(), Merged: merged, Duplicates: dups}, nil
}
