package rake

import (
	"github.com/kittclouds/rakekit/pkg/stopwords"
)

// scoreText runs the shared front half of the pipeline: segmentation,
// acceptability filtering, and co-occurrence scoring.
func scoreText(text string, opts Options, stops stopwords.Set) *Statistics {
	candidates := Segment(text, stops)

	chain := Chain{
		MinLength(opts.MinCharLength),
		MaxWords(opts.MaxWordsLength),
		AlphaDigitRatio(),
		NotStopword(stops),
	}
	filtered := candidates[:0]
	for _, phrase := range candidates {
		if chain.Accept(phrase) {
			filtered = append(filtered, phrase)
		}
	}

	return Score(filtered, opts.MinKeywordFrequency)
}

// ExtractScored runs the full pipeline and returns ranked phrases with their
// co-occurrence scores.
func ExtractScored(text string, opts Options) []Scored {
	opts = opts.normalized()
	stops := opts.stopSet()

	ranked := scoreText(text, opts, stops).RankPhrases()

	return FilterByRole(ranked, opts.AllowedRoleTags, opts.Tagger)
}

// Extract runs the full pipeline and returns the ranked phrase strings.
func Extract(text string, opts Options) []string {
	return texts(ExtractScored(text, opts))
}

// ExtractKeywordsScored ranks individual words instead of phrases. Words are
// scored from the same phrase co-occurrence statistics, then pass through
// the per-word acceptability filters, the frequency threshold, and the role
// post-filter.
func ExtractKeywordsScored(text string, opts Options) []Scored {
	opts = opts.normalized()
	stops := opts.stopSet()

	stats := scoreText(text, opts, stops)

	// MaxWords is trivially satisfied by single words, so the word chain
	// drops it.
	wordChain := Chain{
		MinLength(opts.MinCharLength),
		AlphaDigitRatio(),
		NotStopword(stops),
	}
	keywords := make([]Scored, 0, len(stats.Words))
	for _, w := range stats.RankWords() {
		if !wordChain.Accept(w.Text) {
			continue
		}
		if stats.Words[w.Text].Frequency < opts.MinKeywordFrequency {
			continue
		}
		keywords = append(keywords, w)
	}

	return FilterByRole(keywords, opts.AllowedRoleTags, opts.Tagger)
}

// ExtractKeywords runs the word-granularity pipeline and returns the ranked
// keyword strings.
func ExtractKeywords(text string, opts Options) []string {
	return texts(ExtractKeywordsScored(text, opts))
}

func texts(items []Scored) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}
