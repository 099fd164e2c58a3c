// Package report prints human-readable summaries of documents and corpora.
//
// Every Reporter is fixed to one of two modes at construction: terse, which
// prints one line per report, and verbose, which prints bannered blocks and
// one indexed line per entry.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"textcorpus/internal/domain"
)

const banner = "----------------------------------------"

// Reporter writes reports to an output stream.
type Reporter struct {
	out     io.Writer
	verbose bool
	err     error
}

// New returns a Reporter writing to w.
func New(w io.Writer, verbose bool) *Reporter {
	return &Reporter{out: w, verbose: verbose}
}

// Verbose reports which mode the Reporter was created with.
func (r *Reporter) Verbose() bool { return r.verbose }

// Err returns the first write error encountered, if any.
func (r *Reporter) Err() error { return r.err }

// DescribeDocument prints the filename with paragraph and sentence counts.
func (r *Reporter) DescribeDocument(doc *domain.Document) error {
	if r.verbose {
		r.println(banner)
		r.printf("Filename of Document: %s\n", doc.Filename())
		r.printf("# of paragraphs: %d\n", doc.NumParagraphs())
		r.printf("# of sentences: %d\n", doc.NumSentences())
		r.printf("Checksum: %016x (%d bytes)\n", doc.Checksum(), doc.Size())
		r.println(banner)
		r.println("")
		return r.err
	}
	r.printf("Document '%s' contains %d paragraph(s) and %d sentence(s).\n",
		doc.Filename(), doc.NumParagraphs(), doc.NumSentences())
	return r.err
}

// ListParagraphs prints every paragraph of doc.
func (r *Reporter) ListParagraphs(doc *domain.Document) error {
	return r.list(doc.Filename(), "Paragraphs", "paragraphs", "paragraphs", doc.Paragraphs())
}

// ListSentences prints every sentence of doc.
func (r *Reporter) ListSentences(doc *domain.Document) error {
	return r.list(doc.Filename(), "Sentences", "sentences", "sentence", doc.Sentences())
}

func (r *Reporter) list(filename, title, noun, field string, entries []string) error {
	if len(entries) == 0 {
		r.printf("No %s in '%s' to display.\n", noun, filename)
		return r.err
	}
	if r.verbose {
		r.printf("%s in Document '%s':\n", title, filename)
		for i, e := range entries {
			r.printf("%s->%s[%d]: %s\n", filename, field, i, e)
		}
		return r.err
	}
	r.printf("%s in '%s': %s\n", title, filename, FormatList(entries))
	return r.err
}

// DescribeCorpus prints the document count and keys.
func (r *Reporter) DescribeCorpus(c *domain.Corpus) error {
	if c.Len() == 0 {
		r.println("No documents in Corpus to display.")
		return r.err
	}
	keys := FormatList(c.Filenames())
	if r.verbose {
		r.println(banner)
		r.printf("# of documents in Corpus: %d\n", c.Len())
		r.printf("Document keys in Corpus: %s\n", keys)
		r.println(banner)
		r.println("")
		return r.err
	}
	r.printf("Corpus contains %d document(s): %s\n", c.Len(), keys)
	return r.err
}

// FormatList renders items as a bracketed list of quoted strings.
func FormatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(s))
	}
	b.WriteByte(']')
	return b.String()
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

func (r *Reporter) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.out, s)
}
