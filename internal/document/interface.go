package document

import "context"

// Page is one extracted unit of work: the rendered page image on disk plus
// the raw text pulled from the page (possibly empty).
type Page struct {
	Index     int
	ImagePath string
	Text      string
}

// Document defines the interface for an opened paged document
type Document interface {
	PageCount() int
	// ExtractPage renders page index as a PNG at imagePath and returns the
	// page together with its extracted text.
	ExtractPage(ctx context.Context, index int, imagePath string) (Page, error)
	Close() error
}

// Opener opens a document at the given path
type Opener func(path string) (Document, error)
