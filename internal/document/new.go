package document

import (
	"github.com/gen2brain/go-fitz"
)

type implDocument struct {
	doc *fitz.Document
}

// Open opens a PDF document with go-fitz
func Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return &implDocument{doc: doc}, nil
}
