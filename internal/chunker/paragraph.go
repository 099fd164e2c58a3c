package chunker

import (
	"strings"
	"unicode/utf8"

	"textcorpus/internal/domain"
)

// ParagraphSplitter treats every non-empty line as a paragraph.
type ParagraphSplitter struct{}

var _ domain.Splitter = ParagraphSplitter{}

func NewParagraphSplitter() ParagraphSplitter { return ParagraphSplitter{} }

// Split implements domain.Splitter.
func (ParagraphSplitter) Split(text string) []string { return SplitParagraphs(text) }

// SplitParagraphs splits text into lines and drops the empty ones. Lines
// containing only whitespace are kept.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range splitLines(text) {
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// splitLines breaks on \n, \r\n, \r and the other Unicode line separators.
// A trailing separator does not produce a final empty line.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexFunc(text, isLineBreak)
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		_, width := utf8.DecodeRuneInString(text[i:])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			width = 2
		}
		text = text[i+width:]
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
