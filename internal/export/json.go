package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"textcorpus/internal/domain"
)

// Corpus is the JSON form of a corpus.
type Corpus struct {
	Documents []Document `json:"documents"`
}

// Document is the JSON form of a document.
type Document struct {
	Filename   string   `json:"filename"`
	Checksum   string   `json:"checksum"`
	Size       int      `json:"size"`
	Paragraphs []string `json:"paragraphs"`
	Sentences  []string `json:"sentences"`
}

// FromCorpus converts c into its JSON form, documents in listing order.
func FromCorpus(c *domain.Corpus) Corpus {
	out := Corpus{Documents: make([]Document, 0, c.Len())}
	for _, doc := range c.Documents() {
		out.Documents = append(out.Documents, Document{
			Filename:   doc.Filename(),
			Checksum:   formatChecksum(doc.Checksum()),
			Size:       doc.Size(),
			Paragraphs: nonNil(doc.Paragraphs()),
			Sentences:  nonNil(doc.Sentences()),
		})
	}
	return out
}

// Write encodes c to w as indented JSON.
func Write(w io.Writer, c *domain.Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromCorpus(c))
}

func formatChecksum(sum uint64) string { return fmt.Sprintf("%016x", sum) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
