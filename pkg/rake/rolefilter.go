package rake

import (
	"strings"
	"unicode"

	"github.com/kittclouds/rakekit/pkg/postag"
)

// FilterByRole keeps the ranked items whose role tags intersect the allowed
// set. An empty allowed set disables the filter and returns items unchanged.
// Items the tagger has no entry for are dropped; a nil tagger behaves like
// an empty lexicon.
func FilterByRole(items []Scored, allowed []string, tags postag.Provider) []Scored {
	if len(allowed) == 0 {
		return items
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	out := make([]Scored, 0, len(items))
	if tags == nil {
		return out
	}
	for _, item := range items {
		if intersects(roleTags(item.Text, tags), allowedSet) {
			out = append(out, item)
		}
	}
	return out
}

// roleTags unions the tagger's answers for the four lookup variants of text:
// exact, uppercased, title-cased, and with non-alphanumerics as spaces.
func roleTags(text string, tags postag.Provider) []string {
	variants := []string{
		text,
		strings.ToUpper(text),
		titleCase(text),
		despecialize(text),
	}

	var union []string
	seen := make(map[string]struct{})
	for _, v := range variants {
		for _, t := range tags.Lookup(v) {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			union = append(union, t)
		}
	}
	return union
}

func intersects(tags []string, allowed map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := allowed[t]; ok {
			return true
		}
	}
	return false
}

// titleCase upcases the first letter of each whitespace-separated word.
func titleCase(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// despecialize replaces every non-alphanumeric rune with a space.
func despecialize(text string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return ' '
	}, text)
}
