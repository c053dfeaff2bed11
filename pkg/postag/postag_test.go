package postag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_Lookup(t *testing.T) {
	lex := Static{
		"cat":     {"NN"},
		"bananas": {"NNS"},
		"run":     {"VB", "NN"},
	}

	assert.Equal(t, []string{"NN"}, lex.Lookup("cat"))
	assert.Equal(t, []string{"VB", "NN"}, lex.Lookup("run"))
	assert.Empty(t, lex.Lookup("missing"))
}

func TestPerceptron_Lookup(t *testing.T) {
	p := NewPerceptron()

	// One word in, one committed tag out.
	tags := p.Lookup("table")
	assert.Len(t, tags, 1)

	assert.Empty(t, p.Lookup(""))
}
