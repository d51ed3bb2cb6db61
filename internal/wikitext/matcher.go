// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikitext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	openTag  = "<ref"
	closeTag = "</ref>"
)

// nameAttrRe matches a name attribute inside a ref tag's attribute string:
// name = bareword or name = "quoted value". The captured value keeps its
// surrounding quotes. Bare names may contain any Unicode letter or digit;
// Go's \w is ASCII-only, so the class is spelled out.
var nameAttrRe = regexp.MustCompile(`name\s*=\s*([\p{L}\p{N}_]+|"[^"]*")`)

// RefOccurrence is one matched <ref ...>payload</ref> instance in the
// article. Start and End are byte offsets into the source text; End points
// one past the terminating close tag.
type RefOccurrence struct {
	Start   int
	End     int
	Attrs   string
	Payload string
}

// Text returns the full matched tag as it appears in the source.
func (r RefOccurrence) Text(source string) string {
	return source[r.Start:r.End]
}

// HasName reports whether the occurrence carries an explicit name attribute.
func (r RefOccurrence) HasName() bool {
	return nameAttrRe.MatchString(r.Attrs)
}

// NameAttr returns the value of the occurrence's name attribute with
// surrounding quotes stripped, or "" if there is none.
func (r RefOccurrence) NameAttr() (string, bool) {
	m := nameAttrRe.FindStringSubmatch(r.Attrs)
	if m == nil {
		return "", false
	}
	return strings.Trim(m[1], `"`), true
}

// nextRef finds the next well-formed ref occurrence at or after start.
//
// A match begins at a literal "<ref" followed by a word boundary. The
// attribute string runs to the first '>' and may not itself contain '>';
// an attribute string ending in '/' is a self-closing tag and is never
// matched. The payload is the minimal run of characters up to the first
// literal "</ref>", which may span multiple lines.
//
// This is the explicit form of the non-greedy pattern
// <ref\b[^>]*(?<!/)>.*?</ref>; Go's regexp has no lookbehind, so the
// self-closing exclusion is checked by hand. Candidates that fail (self
// closing, or no close tag follows) resume scanning at the next "<ref".
func nextRef(text string, start int) (RefOccurrence, bool) {
	for i := start; i <= len(text); {
		j := strings.Index(text[i:], openTag)
		if j < 0 {
			return RefOccurrence{}, false
		}
		pos := i + j
		rest := pos + len(openTag)

		// Word boundary: "<reference>" is not a ref tag.
		if rest < len(text) {
			if r, _ := utf8.DecodeRuneInString(text[rest:]); isWordRune(r) {
				i = pos + 1
				continue
			}
		}

		gt := strings.IndexByte(text[rest:], '>')
		if gt < 0 {
			// No '>' anywhere ahead, so no later candidate can match either.
			return RefOccurrence{}, false
		}
		attrs := text[rest : rest+gt]
		if strings.HasSuffix(attrs, "/") {
			i = pos + 1
			continue
		}

		payloadStart := rest + gt + 1
		k := strings.Index(text[payloadStart:], closeTag)
		if k < 0 {
			i = pos + 1
			continue
		}

		return RefOccurrence{
			Start:   pos,
			End:     payloadStart + k + len(closeTag),
			Attrs:   attrs,
			Payload: text[payloadStart : payloadStart+k],
		}, true
	}
	return RefOccurrence{}, false
}

// isWordRune reports whether r is a word character (letter, digit, underscore).
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
