package docfile

import "errors"

var (
	// ErrNotFound indicates the document path does not resolve to a file.
	ErrNotFound = errors.New("document file not found")

	// ErrInvalidDocument indicates the file is not a well-formed .docx container.
	ErrInvalidDocument = errors.New("not a valid Word document")
)
