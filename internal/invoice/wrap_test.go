package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAddress(t *testing.T) {
	got := WrapAddress("This is a very long client address line")

	lines := strings.Split(got, "\n")
	assert.Greater(t, len(lines), 1, "long address should wrap")
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 25, "line %q exceeds 25 characters", line)
		assert.False(t, strings.HasPrefix(line, " "), "segment boundary should fall on a space")
		assert.False(t, strings.HasSuffix(line, " "))
	}

	// Joining the lines back gives the original text - wrapping only
	// substitutes spaces with line breaks.
	assert.Equal(t, "This is a very long client address line", strings.ReplaceAll(got, "\n", " "))
}

func TestWrapAddressShortAndEmpty(t *testing.T) {
	assert.Equal(t, "", WrapAddress(""))
	assert.Equal(t, "42 Short St", WrapAddress("42 Short St"))
}

func TestWrapAddressOverlongWord(t *testing.T) {
	// A single word over the budget gets its own line; it is never chopped.
	got := WrapAddress("prefix Antidisestablishmentarianism suffix")
	assert.Equal(t, "prefix\nAntidisestablishmentarianism\nsuffix", got)
}

func TestWrapDescription(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = "word"
	}
	got := WrapDescription(strings.Join(words, " "))

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[0]), 15)
	assert.Len(t, strings.Fields(lines[1]), 5)
}

func TestWrapDescriptionUnderLimit(t *testing.T) {
	assert.Equal(t, "short description", WrapDescription("short description"))
	assert.Equal(t, "", WrapDescription(""))
}
