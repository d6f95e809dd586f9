package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_PrefersStructured(t *testing.T) {
	doc := mustParse(t, `{"properties": {"a": {"default": "1"}}}`)
	called := false

	entries, format, ok := Normalize(doc, func() string {
		called = true
		return "B=2\n"
	})

	assert.True(t, ok)
	assert.Equal(t, FormatStructured, format)
	assert.Equal(t, []string{"A"}, Keys(entries))
	assert.False(t, called, "flat document must not be requested")
}

func TestNormalize_FallsBackToFlat(t *testing.T) {
	doc := mustParse(t, `{"title": "no properties"}`)

	entries, format, ok := Normalize(doc, func() string { return "B=2\n" })

	assert.True(t, ok)
	assert.Equal(t, FormatFlat, format)
	assert.Equal(t, []string{"B"}, Keys(entries))
}

func TestNormalize_NothingFound(t *testing.T) {
	_, _, ok := Normalize(nil, func() string { return "# nothing\n" })
	assert.False(t, ok)

	_, _, ok = Normalize(nil, nil)
	assert.False(t, ok)
}
