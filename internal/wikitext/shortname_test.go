package wikitext

import (
	"strings"
	"testing"
)

func TestGenerateShortName(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			// md5("a") = 0cc175b9c0f1b6a831c399e269772661
			name:    "single word char",
			payload: "a",
			want:    "a0cc175b9c0",
		},
		{
			name:    "stem fills all eight characters",
			payload: "content 1",
			want:    "content1929",
		},
		{
			name:    "same stem distinct digest",
			payload: "content 2",
			want:    "content2668",
		},
		{
			name:    "whitespace changes the digest",
			payload: " a ",
			want:    "ae49736f09a",
		},
		{
			name:    "cite template boilerplate stripped",
			payload: "{{cite web |title=Foo |url=https://example.com/bar}}",
			want:    "Foo1aa126d6",
		},
		{
			name:    "digit start gets underscore prefix",
			payload: "1984 dystopia",
			want:    "_1984dyst598",
		},
		{
			// md5("Ärzte Zeitung") = f9197da6a04c3cc76d9000636f1c4c37; the
			// stem keeps non-ASCII letters and counts them as one character.
			name:    "unicode letters kept in stem",
			payload: "Ärzte Zeitung",
			want:    "ÄrzteZeif91",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateShortName(tt.payload); got != tt.want {
				t.Errorf("GenerateShortName(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestGenerateShortNameDeterministic(t *testing.T) {
	payload := "{{cite journal |author=Knuth |title=Literate Programming}}"
	first := GenerateShortName(payload)
	for i := 0; i < 3; i++ {
		if got := GenerateShortName(payload); got != first {
			t.Fatalf("name changed between calls: %q vs %q", got, first)
		}
	}
}

func TestGenerateShortNameStripsURLs(t *testing.T) {
	name := GenerateShortName("See https://www.example.com/a lot")
	if !strings.HasPrefix(name, "Seelot") {
		t.Errorf("stem should skip the URL, got %q", name)
	}
}

func TestGenerateShortNameShape(t *testing.T) {
	payloads := []string{
		"",
		"a",
		"{{cite book |title=1984 |author=Orwell}}",
		"12345678901234567890",
		strings.Repeat("x", 1000),
	}
	for _, p := range payloads {
		name := GenerateShortName(p)
		if name == "" {
			t.Errorf("empty name for payload %q", p)
			continue
		}
		if name[0] >= '0' && name[0] <= '9' {
			t.Errorf("name %q starts with a digit", name)
		}
		if len(name) > shortNameLen+1 {
			t.Errorf("name %q longer than %d", name, shortNameLen+1)
		}
	}
}
