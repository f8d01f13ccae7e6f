package highlight

import "errors"

var (
	// ErrSearcherRequired is returned when constructing a highlighter
	// without a document searcher.
	ErrSearcherRequired = errors.New("document searcher is required")

	// ErrSearchFailed is returned when the document search collaborator
	// fails during the primary highlighting pass.
	ErrSearchFailed = errors.New("document search failed")
)
