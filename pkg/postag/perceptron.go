package postag

import (
	"github.com/jdkato/prose/tag"
)

// Perceptron adapts prose's averaged-perceptron POS tagger to the Provider
// interface. Construction loads the bundled model; do it once, before the
// extraction calls that use it.
type Perceptron struct {
	tagger *tag.PerceptronTagger
}

// NewPerceptron loads the tagger model.
func NewPerceptron() *Perceptron {
	return &Perceptron{tagger: tag.NewPerceptronTagger()}
}

// Lookup tags the word and returns the tag the perceptron commits to, if
// any.
func (p *Perceptron) Lookup(word string) []string {
	if word == "" {
		return nil
	}
	var tags []string
	for _, tok := range p.tagger.Tag([]string{word}) {
		if tok.Tag != "" {
			tags = append(tags, tok.Tag)
		}
	}
	return tags
}
