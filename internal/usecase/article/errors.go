// Package article provides the reader-facing use cases for articles:
// fetching a published post (which records a hit), listing published
// posts, and fetching standalone pages by title.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no published article matched the
	// request. Drafts and missing rows are indistinguishable to readers.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
