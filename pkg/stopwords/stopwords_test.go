package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_New(t *testing.T) {
	s := New("The", " and ", "", "of")

	assert.True(t, s.Has("the"))
	assert.True(t, s.Has("and"))
	assert.True(t, s.Has("of"))
	assert.False(t, s.Has(""))
	assert.False(t, s.Has("cat"))
	assert.Len(t, s, 3)
}

func TestSet_Union(t *testing.T) {
	a := New("a", "b")
	b := New("b", "c")

	u := a.Union(b)
	assert.Len(t, u, 3)
	assert.True(t, u.Has("a"))
	assert.True(t, u.Has("c"))

	// Originals untouched
	assert.Len(t, a, 2)
	assert.Len(t, b, 2)
}

func TestTable_Lookup(t *testing.T) {
	tbl := NewTable(map[string][]string{
		"en": {"the", "and"},
		"ES": {"el", "la"},
	})

	assert.True(t, tbl.Lookup("en").Has("the"))
	assert.True(t, tbl.Lookup("es").Has("el"), "codes are case-insensitive")
	assert.True(t, tbl.Lookup("ES").Has("la"))
}

func TestTable_UnknownLanguage(t *testing.T) {
	tbl := NewTable(map[string][]string{"en": {"the"}})

	// Unknown codes degrade to an empty set, they never fault.
	s := tbl.Lookup("xx")
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestDefault_English(t *testing.T) {
	en := Default().Lookup("en")

	for _, w := range []string{"i", "a", "the", "here", "for", "and"} {
		assert.True(t, en.Has(w), "expected %q in default english set", w)
	}
	assert.False(t, en.Has("table"))

	// Same provider on repeated calls
	assert.Same(t, Default(), Default())
}

func TestDefault_MultiLanguage(t *testing.T) {
	assert.True(t, Default().Lookup("de").Has("und"))
	assert.True(t, Default().Lookup("es").Has("el"))
}

func TestISO_Lookup(t *testing.T) {
	p := NewISO()

	en := p.Lookup("en")
	assert.True(t, en.Has("the"))

	// Memoized: repeated lookups hand out the same set.
	assert.Equal(t, en, p.Lookup("en"))
}

func TestISO_UnknownLanguage(t *testing.T) {
	s := NewISO().Lookup("xx")

	assert.NotNil(t, s)
	assert.Empty(t, s)
}
