package rake

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kittclouds/rakekit/pkg/stopwords"
)

// Filter is a pure acceptability predicate over a candidate phrase string.
type Filter interface {
	Accept(phrase string) bool
}

// Chain evaluates filters in order, rejecting on the first failure. The
// result does not depend on ordering, so order is a performance choice.
type Chain []Filter

// Accept reports whether every filter in the chain accepts the phrase.
func (c Chain) Accept(phrase string) bool {
	for _, f := range c {
		if !f.Accept(phrase) {
			return false
		}
	}
	return true
}

// ============================================================================
// Standard filters
// ============================================================================

type minLength int

// MinLength accepts phrases of at least n characters (runes). Negative n is
// clamped to 0.
func MinLength(n int) Filter {
	if n < 0 {
		n = 0
	}
	return minLength(n)
}

func (f minLength) Accept(phrase string) bool {
	return utf8.RuneCountInString(phrase) >= int(f)
}

type maxWords int

// MaxWords accepts phrases of at most n whitespace-separated words. Values
// below 1 are clamped to 1.
func MaxWords(n int) Filter {
	if n < 1 {
		n = 1
	}
	return maxWords(n)
}

func (f maxWords) Accept(phrase string) bool {
	return len(strings.Fields(phrase)) <= int(f)
}

type alphaDigitRatio struct{}

// AlphaDigitRatio accepts phrases whose alphabetic characters outnumber
// their digits. A phrase with no letters is always rejected.
func AlphaDigitRatio() Filter {
	return alphaDigitRatio{}
}

func (alphaDigitRatio) Accept(phrase string) bool {
	var letters, digits int
	for _, r := range phrase {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return letters > 0 && letters > digits
}

type notStopword struct {
	stops stopwords.Set
}

// NotStopword rejects phrases whose entire normalized string is a member of
// the stopword set.
func NotStopword(stops stopwords.Set) Filter {
	return notStopword{stops: stops}
}

func (f notStopword) Accept(phrase string) bool {
	return !f.stops.Has(phrase)
}
