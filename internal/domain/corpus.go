package domain

import "fmt"

// Corpus is a collection of documents keyed by filename. Listing follows
// first-insertion order.
type Corpus struct {
	documents map[string]*Document
	order     []string
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{documents: make(map[string]*Document)}
}

// AddDocument stores doc under filename. An existing entry with the same key
// is replaced and keeps its listing position.
func (c *Corpus) AddDocument(filename string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: add_document got nil, want *Document", ErrInvalidDocument)
	}
	if doc.Filename() != filename {
		return fmt.Errorf("%w: key %q, document %q", ErrFilenameMismatch, filename, doc.Filename())
	}
	if _, ok := c.documents[filename]; !ok {
		c.order = append(c.order, filename)
	}
	c.documents[filename] = doc
	return nil
}

// Add stores doc under its own filename.
func (c *Corpus) Add(doc *Document) error {
	if doc == nil {
		return c.AddDocument("", nil)
	}
	return c.AddDocument(doc.Filename(), doc)
}

// GetDocument returns the document stored under filename.
func (c *Corpus) GetDocument(filename string) (*Document, error) {
	doc, ok := c.documents[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, filename)
	}
	return doc, nil
}

func (c *Corpus) Has(filename string) bool {
	_, ok := c.documents[filename]
	return ok
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.order) }

// Filenames returns the document keys in listing order.
func (c *Corpus) Filenames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Documents returns the documents in listing order.
func (c *Corpus) Documents() []*Document {
	out := make([]*Document, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.documents[name])
	}
	return out
}
