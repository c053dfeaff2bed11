package rake

import (
	"github.com/kittclouds/rakekit/pkg/postag"
	"github.com/kittclouds/rakekit/pkg/stopwords"
)

// Options configures one extraction call. Start from DefaultOptions; the
// zero value is usable but carries the least permissive clamped limits, not
// the defaults.
type Options struct {
	// Language selects the default stopword set (default "en"). Unknown
	// codes degrade to an empty set.
	Language string

	// AdditionalStopWords are unioned with the language default.
	AdditionalStopWords []string

	// AllowedRoleTags enables the part-of-speech post-filter when non-empty;
	// only results whose tags intersect this set survive.
	AllowedRoleTags []string

	// MinCharLength is the minimum phrase length in runes (default 1).
	MinCharLength int

	// MaxWordsLength is the maximum words per phrase (default 5).
	MaxWordsLength int

	// MinKeywordFrequency is the minimum occurrence count a result needs
	// (default 1).
	MinKeywordFrequency int

	// StopWords resolves language codes to stopword sets. Defaults to the
	// bundled table.
	StopWords stopwords.Provider

	// Tagger resolves words to role tags. Only consulted when
	// AllowedRoleTags is set; nil behaves like an empty lexicon.
	Tagger postag.Provider
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Language:            "en",
		MinCharLength:       1,
		MaxWordsLength:      5,
		MinKeywordFrequency: 1,
	}
}

// normalized fills fallbacks and clamps out-of-range limits to their least
// permissive valid values instead of letting filters misbehave.
func (o Options) normalized() Options {
	if o.Language == "" {
		o.Language = "en"
	}
	if o.MinCharLength < 0 {
		o.MinCharLength = 0
	}
	if o.MaxWordsLength < 1 {
		o.MaxWordsLength = 1
	}
	if o.MinKeywordFrequency < 1 {
		o.MinKeywordFrequency = 1
	}
	if o.StopWords == nil {
		o.StopWords = stopwords.Default()
	}
	return o
}

// stopSet builds the combined stopword set for the call.
func (o Options) stopSet() stopwords.Set {
	base := o.StopWords.Lookup(o.Language)
	if len(o.AdditionalStopWords) == 0 {
		return base
	}
	return base.Union(stopwords.New(o.AdditionalStopWords...))
}
