// Package postag defines the grammatical-tagger capability consumed by the
// role post-filter: a read-only mapping from a normalized word to zero or
// more part-of-speech tags (Penn Treebank style, e.g. NN, NNS, VB).
package postag

// Provider resolves a word to its role tags. A miss is an empty result, not
// an error. Implementations must be safe for concurrent readers.
type Provider interface {
	Lookup(word string) []string
}

// Static is a map-backed Provider for custom lexicons and tests.
type Static map[string][]string

// Lookup returns the tags recorded for word, or nil.
func (s Static) Lookup(word string) []string {
	return s[word]
}
