package stopwords

import (
	"strings"
	"sync"

	iso "github.com/orsinium-labs/stopwords"
)

// ISO resolves language codes through the stopwords-iso word lists embedded
// in github.com/orsinium-labs/stopwords, which cover several dozen
// languages. Converted sets are memoized per code; unknown codes come back
// as empty sets.
type ISO struct {
	mu    sync.Mutex
	cache map[string]Set
}

// NewISO returns an empty-cached provider.
func NewISO() *ISO {
	return &ISO{cache: make(map[string]Set)}
}

// Lookup converts the language's embedded word list to a Set. The library
// returns nil for unknown codes, which converts to an empty set.
func (p *ISO) Lookup(lang string) Set {
	lang = strings.ToLower(lang)

	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.cache[lang]; ok {
		return s
	}
	var words []string
	if sw := iso.Get(lang); sw != nil {
		words = sw.Trie.Keys()
	}
	s := New(words...)
	p.cache[lang] = s
	return s
}

var (
	defaultOnce     sync.Once
	defaultProvider *ISO
)

// Default returns the process-wide bundled provider. It is built on first
// use; the sets it hands out are shared and must be treated as immutable.
func Default() Provider {
	defaultOnce.Do(func() {
		defaultProvider = NewISO()
	})
	return defaultProvider
}
