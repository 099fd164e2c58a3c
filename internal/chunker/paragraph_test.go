package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single line", "Hello world. Bye!", []string{"Hello world. Bye!"}},
		{"two lines keep punctuation", "Line one.\nLine two?", []string{"Line one.", "Line two?"}},
		{"blank lines dropped", "a\n\n\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"unicode separators", "a\u2028b\u2029c\u0085d", []string{"a", "b", "c", "d"}},
		{"whitespace-only line kept", "a\n  \nb", []string{"a", "  ", "b"}},
		{"empty", "", nil},
		{"only newlines", "\n\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.in))
		})
	}
}

func TestParagraphSplitter_Split(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, NewParagraphSplitter().Split("x\n\ny"))
}
