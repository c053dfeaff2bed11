package rake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankPhrases_Descending(t *testing.T) {
	stats := Score([]string{"deep learning", "deep learning", "alpha"}, 1)

	ranked := stats.RankPhrases()
	assert.Equal(t, []string{"deep learning", "alpha"}, scoredTexts(ranked))
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankPhrases_StableTieBreak(t *testing.T) {
	// All single-word phrases score 0: a pure tie.
	stats := Score([]string{"gamma", "alpha", "beta"}, 1)

	ranked := stats.RankPhrases()
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, scoredTexts(ranked),
		"ties keep first-appearance order")
}

func TestRankPhrases_SkipsDiscarded(t *testing.T) {
	stats := Score([]string{"ab", "ab", "cat"}, 2)

	ranked := stats.RankPhrases()
	assert.Equal(t, []string{"ab"}, scoredTexts(ranked))
}

func TestRankWords_StableTieBreak(t *testing.T) {
	stats := Score([]string{"gamma", "alpha", "beta"}, 1)

	ranked := stats.RankWords()
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, scoredTexts(ranked))
}

func TestRankWords_Descending(t *testing.T) {
	stats := Score([]string{"deep learning", "alpha"}, 1)

	ranked := stats.RankWords()
	assert.Equal(t, []string{"deep", "learning", "alpha"}, scoredTexts(ranked))
}

func scoredTexts(items []Scored) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}
