package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", " \t\n ", 0},
		{"simple", "one two three", 3},
		{"hyphen and apostrophe", "well-known isn't", 2},
		{"punctuation splits", "Hello world!", 2},
		{"punctuation glued words", "end.start,next;last", 4},
		{"punctuation only", "!!! ...", 0},
		{"multi line", "first line\nsecond line\n", 4},
		{"brackets and slashes", "a/b [c] {d} (e) \\f", 6},
		{"possessive", "the cat's toy", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestCountWordsIgnoresSurroundingWhitespace(t *testing.T) {
	for _, text := range []string{"one two three", "well-known isn't", "Hello, world!"} {
		base := CountWords(text)
		assert.Equal(t, base, CountWords("   "+text))
		assert.Equal(t, base, CountWords(text+"\n\t  "))
		assert.Equal(t, base, CountWords("\n"+text+" "))
	}
}
