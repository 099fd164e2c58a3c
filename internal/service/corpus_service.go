package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/xxh3"

	"textcorpus/internal/chunker"
	"textcorpus/internal/domain"
	"textcorpus/internal/logger"
)

var _ domain.CorpusBuilder = (*CorpusService)(nil)

// CorpusService scans a directory of .txt files into documents and
// assembles them into a corpus. Scanning is sequential and stops at the
// first unreadable file.
type CorpusService struct {
	sentences  domain.Splitter
	paragraphs domain.Splitter
	log        logger.Logger
}

// NewCorpusService wires the builder. Nil splitters fall back to the
// punctuation sentence splitter and the line paragraph splitter.
func NewCorpusService(sentences, paragraphs domain.Splitter, log logger.Logger) *CorpusService {
	if sentences == nil {
		sentences = chunker.NewSentenceSplitter()
	}
	if paragraphs == nil {
		paragraphs = chunker.NewParagraphSplitter()
	}
	return &CorpusService{sentences: sentences, paragraphs: paragraphs, log: logger.OrNop(log)}
}

// DiscoverAndParse parses every .txt file directly inside dir, in name
// order. Subdirectories and other extensions are skipped.
func (s *CorpusService) DiscoverAndParse(dir string) ([]*domain.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: %w", dir, domain.ErrNotDirectory)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	s.log.Debug("scanning %s (%d entries)", dir, len(entries))

	documents := make([]*domain.Document, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isTextFile(name) {
			s.log.Debug("skip %s", name)
			continue
		}
		doc, err := s.parseFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		s.log.Debug("parsed %s: %d paragraph(s), %d sentence(s)", name, doc.NumParagraphs(), doc.NumSentences())
		documents = append(documents, doc)
	}
	s.log.Info("parsed %d document(s) from %s", len(documents), dir)
	return documents, nil
}

// AssembleCorpus builds a fresh corpus keyed by each document's filename.
func (s *CorpusService) AssembleCorpus(documents []*domain.Document) (*domain.Corpus, error) {
	corpus := domain.NewCorpus()
	for _, doc := range documents {
		if doc != nil && corpus.Has(doc.Filename()) {
			s.log.Warn("duplicate filename %q replaces earlier document", doc.Filename())
		}
		if err := corpus.Add(doc); err != nil {
			return nil, err
		}
	}
	return corpus, nil
}

// Build runs DiscoverAndParse followed by AssembleCorpus.
func (s *CorpusService) Build(dir string) (*domain.Corpus, error) {
	documents, err := s.DiscoverAndParse(dir)
	if err != nil {
		return nil, err
	}
	return s.AssembleCorpus(documents)
}

func (s *CorpusService) parseFile(path string) (*domain.Document, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	doc := domain.NewDocument(filepath.Base(path))
	doc.AppendParagraphs(s.paragraphs.Split(text))
	doc.AppendSentences(s.sentences.Split(text))
	doc.SetChecksum(xxh3.HashString(text), len(text))
	return doc, nil
}

// readText reads path as UTF-8 text with newlines translated to \n.
func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, domain.ErrDecode)
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isTextFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".txt")
}
