package domain

import "slices"

// Document represents a single text file loaded into the system.
type Document struct {
	filename   string
	checksum   uint64
	size       int
	paragraphs []string
	sentences  []string
}

// NewDocument returns an empty document for filename.
func NewDocument(filename string) *Document {
	return &Document{filename: filename}
}

// Filename is the document's identity, the base name of its source file.
func (d *Document) Filename() string { return d.filename }

// Checksum is the xxh3 hash of the decoded content, zero until set.
func (d *Document) Checksum() uint64 { return d.checksum }

// Size is the decoded content length in bytes.
func (d *Document) Size() int { return d.size }

// SetChecksum records the hash and length of the content the document was
// parsed from.
func (d *Document) SetChecksum(sum uint64, size int) {
	d.checksum = sum
	d.size = size
}

// AppendParagraphs extends the paragraph sequence in order.
func (d *Document) AppendParagraphs(paragraphs []string) {
	d.paragraphs = append(d.paragraphs, paragraphs...)
}

// AppendSentences extends the sentence sequence in order.
func (d *Document) AppendSentences(sentences []string) {
	d.sentences = append(d.sentences, sentences...)
}

// Paragraphs returns a copy of the stored paragraphs.
func (d *Document) Paragraphs() []string { return slices.Clone(d.paragraphs) }

// Sentences returns a copy of the stored sentences.
func (d *Document) Sentences() []string { return slices.Clone(d.sentences) }

func (d *Document) NumParagraphs() int { return len(d.paragraphs) }

func (d *Document) NumSentences() int { return len(d.sentences) }
