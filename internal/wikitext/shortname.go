// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikitext

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
)

// shortNameLen is the maximum length of a generated short name, not
// counting the underscore prefixed when the name would start with a digit.
// With up to 8 readable stem characters that leaves at least 3 hex digest
// digits to separate payloads whose stems coincide.
const shortNameLen = 11

// urlRe matches http(s) URLs so they can be stripped before deriving a
// readable stem. https://stackoverflow.com/questions/3809401
var urlRe = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)`)

// citeTemplateNames lists the {{cite ...}} template invocation names
// stripped from payloads before deriving a stem.
const citeTemplateNames = `book|arXiv|AV media|AV media notes|bioRxiv|conference|encyclopedia|episode|interview|magazine|mailing list|journal|map|news|newsgroup|podcast|press release|report|serial|sign |speech|techreport|thesis|web`

// citeTemplateParams lists the citation template parameter keys stripped
// from payloads, per Template:Citation_Style_documentation.
const citeTemplateParams = `access-date|agency|archive-date|archive-url|arxiv|asin|asin-tld|at|author|author-link|author-link1|author-link2|author-link3|author-link4|author-link5|author-mask|author-mask1|author-mask2|author-mask3|author-mask4|author-mask5|author2|authors|bibcode|bibcode-access|biorxiv|book-title|cartography|chapter|chapter-format|chapter-url|chapter-url-access|citeseerx|class|conference|conference-url|credits|date|department|display-authors|display-editors|display-translators|docket|doi|doi-access|doi-broken-date|edition|editor|editor-first|editor-first1|editor-first2|editor-first3|editor-first4|editor-first5|editor-last|editor-last1|editor-last2|editor-last3|editor-last4|editor-last5|editor-link|editor-link1|editor-link2|editor-link3|editor-link4|editor-link5|editor-mask1|editor-mask2|editor-mask3|editor-mask4|editor-mask5|editor1-first|editor1-last|editor1-link|editor2-first|editor2-last|editor2-link|editor3-first|editor3-last|editor3-link|editor4-first|editor4-last|editor4-link|editor5-first|editor5-last|editor5-link|editors|eissn|encyclopedia|episode|episode-link|eprint|event|first|first1|first2|first3|first4|first5|format|hdl|hdl-access|host|id|inset|institution|interviewer|isbn|ismn|issn|issue|jfm|journal|jstor|jstor-access|language|last|last1|last2|last3|last4|last5|lccn|location|magazine|mailing-list|map|map-url|medium|message-id|minutes|mode|mr|name-list-style|network|newsgroup|no-pp|number|oclc|ol|ol-access|orig-date|osti|osti-access|others|page|pages|people|pmc|pmc-embargo-date|pmid|postscript|publication-date|publication-place|publisher|quote|quote-page|quote-pages|ref|registration|rfc|s2cid|s2cid-access|sbn|scale|script-chapter|script-quote|script-title|season|section|sections|series|series-link|series-no|ssrn|station|subject|subject-link|subject-link2|subject-link3|subject-link4|subject2|subject3|subject4|time|title|title-link|trans-chapter|trans-quote|trans-title|transcript|transcript-url|translator-first1|translator-first2|translator-first3|translator-first4|translator-first5|translator-last1|translator-last2|translator-last3|translator-last4|translator-last5|translator-link1|translator-link2|translator-link3|translator-link4|translator-link5|translator-mask1|translator-mask2|translator-mask3|translator-mask4|translator-mask5|type|url|url-access|url-status|via|volume|website|work|year|zbl|zbl`

var (
	templateNameRe  = regexp.MustCompile(`[cC]ite (` + citeTemplateNames + `)`)
	templateParamRe = regexp.MustCompile(`\|\s*(` + citeTemplateParams + `)\s*=`)

	// wordRe matches one word character. Go's \w is ASCII-only; payloads
	// carry Unicode titles and author names, and their letters belong in
	// the stem.
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]`)
)

// GenerateShortName derives a wiki-accepted short name from a citation
// payload: the first 8 word characters of the payload with URLs, cite
// template names, and template parameter keys stripped, followed by the
// lowercase hex MD5 digest of the original payload, truncated to 11
// characters. Names starting with a digit get an underscore prefix, since
// wiki short names must not start with a digit.
//
// The same payload always yields the same name, and the digest component
// keeps distinct payloads from colliding even when their readable stems
// coincide. MD5/lowercase hex is kept for output compatibility across
// versions of the tool.
func GenerateShortName(payload string) string {
	stripped := templateParamRe.ReplaceAllString(
		templateNameRe.ReplaceAllString(
			urlRe.ReplaceAllString(payload, ""), ""), "")

	var stem []byte
	for _, w := range wordRe.FindAllString(stripped, 8) {
		stem = append(stem, w...)
	}

	sum := md5.Sum([]byte(payload))
	// Stem characters and the truncation limit count runes, not bytes, so
	// a multibyte letter is never split.
	runes := []rune(string(stem) + hex.EncodeToString(sum[:]))
	name := string(runes[:shortNameLen])
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
