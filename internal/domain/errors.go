package domain

import "errors"

// Domain errors returned by Document and Corpus operations.
var (
	// ErrNotFound indicates a filename key is absent from the corpus.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates a nil document was handed to the corpus.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrFilenameMismatch indicates a corpus key differs from the
	// document's own filename.
	ErrFilenameMismatch = errors.New("filename does not match document")

	// ErrNotDirectory indicates the corpus path is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrDecode indicates a file's content is not valid UTF-8 text.
	ErrDecode = errors.New("cannot decode text")
)
