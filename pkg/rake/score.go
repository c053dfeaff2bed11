package rake

import (
	"strings"
	"unicode"
)

// WordStat tracks per-word co-occurrence statistics across all phrases.
type WordStat struct {
	Frequency int     // phrase-occurrences containing the word
	Degree    int     // accumulated co-occurrence weight
	Score     float64 // Degree / Frequency
}

// PhraseStat tracks per-phrase statistics.
type PhraseStat struct {
	Frequency int     // exact-string occurrences among the scored phrases
	Score     float64 // sum of constituent word scores
}

// Statistics holds the scored result of one extraction call. Word statistics
// are global: they include contributions from phrases later dropped by the
// frequency threshold.
type Statistics struct {
	Phrases map[string]*PhraseStat
	Words   map[string]*WordStat

	// First-appearance order of distinct keys, kept for the stable ranker.
	phraseOrder []string
	wordOrder   []string
}

// isNumeric reports whether the word is purely numeric (digits with optional
// sign and separators). Numeric words ride along inside phrases but never
// carry score.
func isNumeric(word string) bool {
	hasDigit := false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == '-':
			// separator runes are fine
		default:
			return false
		}
	}
	return hasDigit
}

// contentWords splits a phrase into its scorable words, dropping purely
// numeric ones.
func contentWords(phrase string) []string {
	fields := strings.Fields(phrase)
	words := fields[:0]
	for _, w := range fields {
		if !isNumeric(w) {
			words = append(words, w)
		}
	}
	return words
}

// Score consumes the filtered candidate phrases and computes word and phrase
// statistics. Every word in a phrase gains frequency 1 and degree
// wordCount-1, so words from longer runs accumulate higher degree; a word's
// score is degree/frequency and a phrase's score is the sum over its word
// occurrences. Phrases occurring fewer than minKeywordFrequency times are
// scored and then discarded from the phrase map; their word contributions
// remain.
func Score(phrases []string, minKeywordFrequency int) *Statistics {
	if minKeywordFrequency < 1 {
		minKeywordFrequency = 1
	}

	stats := &Statistics{
		Phrases: make(map[string]*PhraseStat, len(phrases)),
		Words:   make(map[string]*WordStat, len(phrases)*2),
	}

	// Pass 1: frequency and degree
	for _, phrase := range phrases {
		ps := stats.Phrases[phrase]
		if ps == nil {
			ps = &PhraseStat{}
			stats.Phrases[phrase] = ps
			stats.phraseOrder = append(stats.phraseOrder, phrase)
		}
		ps.Frequency++

		words := contentWords(phrase)
		contribution := len(words) - 1
		for _, w := range words {
			ws := stats.Words[w]
			if ws == nil {
				ws = &WordStat{}
				stats.Words[w] = ws
				stats.wordOrder = append(stats.wordOrder, w)
			}
			ws.Frequency++
			ws.Degree += contribution
		}
	}

	// Pass 2: word scores
	for _, ws := range stats.Words {
		ws.Score = float64(ws.Degree) / float64(ws.Frequency)
	}

	// Pass 3: phrase scores, then the frequency cut
	for phrase, ps := range stats.Phrases {
		for _, w := range contentWords(phrase) {
			ps.Score += stats.Words[w].Score
		}
	}
	for phrase, ps := range stats.Phrases {
		if ps.Frequency < minKeywordFrequency {
			delete(stats.Phrases, phrase)
		}
	}

	return stats
}
