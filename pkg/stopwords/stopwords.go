// Package stopwords provides per-language stopword sets for keyword
// extraction. Sets are plain lookup capabilities: callers inject a Provider
// into the pipeline, and the bundled Default provider covers the common
// case.
package stopwords

import (
	"strings"
)

// Set is a normalized stopword membership set.
type Set map[string]struct{}

// New builds a Set from words, lowercasing and trimming each entry.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Has reports whether word is in the set. The word must already be
// normalized (lowercased).
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Union returns a new Set containing the members of both sets. Neither
// receiver nor argument is modified.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range other {
		out[w] = struct{}{}
	}
	return out
}

// Provider resolves a language code to its stopword set.
type Provider interface {
	// Lookup returns the stopword set for a language code. Unknown codes
	// yield an empty set, never nil and never an error.
	Lookup(lang string) Set
}

// Table is an immutable language -> stopword set mapping. Build it once and
// share it freely; Lookup never mutates.
type Table struct {
	langs map[string]Set
}

// NewTable builds a Table from per-language word lists.
func NewTable(lists map[string][]string) *Table {
	langs := make(map[string]Set, len(lists))
	for code, words := range lists {
		langs[strings.ToLower(code)] = New(words...)
	}
	return &Table{langs: langs}
}

// Lookup returns the set for lang, or an empty set for unknown codes.
func (t *Table) Lookup(lang string) Set {
	if s, ok := t.langs[strings.ToLower(lang)]; ok {
		return s
	}
	return Set{}
}

// Languages returns the codes the table has sets for.
func (t *Table) Languages() []string {
	codes := make([]string, 0, len(t.langs))
	for c := range t.langs {
		codes = append(codes, c)
	}
	return codes
}
