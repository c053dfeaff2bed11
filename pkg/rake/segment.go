// Package rake implements unsupervised key-phrase extraction: candidate
// phrases are cut at stopword and punctuation boundaries, scored by word
// co-occurrence (degree/frequency), ranked, and optionally filtered by
// part-of-speech tags. Each call is a pure function of its inputs plus two
// injected read-only lookups (stopwords.Provider, postag.Provider), so
// concurrent calls are safe without locking.
package rake

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kittclouds/rakekit/pkg/stopwords"
)

// isWordRune reports whether r can appear inside a word. Everything else
// (punctuation and symbols) acts as boundary material.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isPunctOnly reports whether the token has no word runes at all.
func isPunctOnly(tok string) bool {
	for _, r := range tok {
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// Segment cuts text into candidate phrases. The text is lowercased and split
// on whitespace; a token that is empty, a stopword, or pure punctuation ends
// the current phrase. A token with leading punctuation ends the phrase first
// and is then considered with the punctuation stripped; a token with trailing
// punctuation joins the phrase and ends it immediately. Output order follows
// first appearance and duplicate phrase strings may recur.
func Segment(text string, stops stopwords.Set) []string {
	tokens := strings.Fields(strings.ToLower(text))

	// Heuristic: stopwords cut roughly every third token.
	phrases := make([]string, 0, len(tokens)/3)
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, tok := range tokens {
		if stops.Has(tok) || isPunctOnly(tok) {
			flush()
			continue
		}

		if first, _ := utf8.DecodeRuneInString(tok); !isWordRune(first) {
			flush()
			tok = strings.TrimLeftFunc(tok, func(r rune) bool { return !isWordRune(r) })
			if tok == "" || stops.Has(tok) {
				continue
			}
		}

		if last, _ := utf8.DecodeLastRuneInString(tok); !isWordRune(last) {
			current = append(current, strings.TrimRightFunc(tok, func(r rune) bool { return !isWordRune(r) }))
			flush()
			continue
		}

		current = append(current, tok)
	}
	flush()

	return phrases
}
