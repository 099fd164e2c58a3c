package chunker

import (
	"regexp"

	"textcorpus/internal/domain"
)

// Terminating punctuation plus any following Unicode whitespace.
var sentenceDelimiter = regexp.MustCompile(`[.?!][\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*`)

// SentenceSplitter splits text on sentence-terminating punctuation.
type SentenceSplitter struct {
	splitter *regexp.Regexp
}

var _ domain.Splitter = (*SentenceSplitter)(nil)

func NewSentenceSplitter() *SentenceSplitter {
	return &SentenceSplitter{splitter: sentenceDelimiter}
}

// Split implements domain.Splitter.
func (s *SentenceSplitter) Split(text string) []string {
	return splitSentences(s.splitter, text)
}

// SplitSentences segments text on '.', '?' or '!' followed by any run of
// whitespace. Delimiters are dropped. A fragment after the last delimiter is
// kept, the empty fragment produced by a trailing delimiter is not. Empty
// input yields no sentences.
func SplitSentences(text string) []string {
	return splitSentences(sentenceDelimiter, text)
}

func splitSentences(re *regexp.Regexp, text string) []string {
	sentences := re.Split(text, -1)
	if n := len(sentences); n > 0 && sentences[n-1] == "" {
		sentences = sentences[:n-1]
	}
	if len(sentences) == 0 {
		return nil
	}
	return sentences
}
