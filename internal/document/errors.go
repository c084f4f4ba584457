package document

import "fmt"

// OpenError reports a document that could not be opened or parsed. It is
// fatal for the whole run: no partial recovery is possible without pages.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
