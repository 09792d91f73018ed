// Package comment provides the comment use cases: posting (with
// notification dispatch), listing, detail resolution with single-level
// parent threading, assessment, and moderation deletes.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	// Comment IDs must be positive integers.
	ErrInvalidCommentID = errors.New("invalid comment ID")

	// ErrArticleNotFound indicates that the target article does not exist
	// or is not published.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentsDisabled indicates that the target article does not
	// accept comments.
	ErrCommentsDisabled = errors.New("comments are disabled for this article")
)
