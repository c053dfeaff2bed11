package rake

import (
	"sort"
)

// Scored is a ranked extraction result.
type Scored struct {
	Text  string
	Score float64
}

// RankPhrases orders the surviving phrases by descending score. Equal scores
// keep first-appearance order; the sort must stay stable or extraction stops
// being deterministic.
func (s *Statistics) RankPhrases() []Scored {
	out := make([]Scored, 0, len(s.Phrases))
	for _, phrase := range s.phraseOrder {
		if ps, ok := s.Phrases[phrase]; ok {
			out = append(out, Scored{Text: phrase, Score: ps.Score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// RankWords orders all scored words by descending score with the same
// stable first-appearance tie-break.
func (s *Statistics) RankWords() []Scored {
	out := make([]Scored, 0, len(s.Words))
	for _, word := range s.wordOrder {
		out = append(out, Scored{Text: word, Score: s.Words[word].Score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
