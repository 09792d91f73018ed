package repository

import (
	"context"

	"inkpress/internal/domain/entity"
)

// CommentRepository provides persistent storage for comments.
// Lookup methods return (nil, nil) when no row matches.
type CommentRepository interface {
	// Insert persists a new comment and returns the assigned ID.
	Insert(ctx context.Context, c *entity.Comment) (int64, error)
	// Get retrieves a comment by ID.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListByArticle retrieves comments for one article ordered by creation
	// time ascending (oldest first, natural conversation order).
	ListByArticle(ctx context.Context, articleID int64, offset, limit int) ([]*entity.Comment, error)
	// CountByArticle returns the number of comments on one article.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
	// List retrieves comments across all articles ordered by creation time
	// descending (admin moderation view).
	List(ctx context.Context, offset, limit int) ([]*entity.Comment, error)
	// Count returns the total number of comments.
	Count(ctx context.Context) (int64, error)
	// IncrementAssessment atomically adds 1 to the agree or disagree
	// counter of a comment as a single SQL statement. Returns false when
	// the comment does not exist.
	IncrementAssessment(ctx context.Context, id int64, kind entity.AssessKind) (bool, error)
	// Delete removes a comment. Deleting a missing comment is an error.
	Delete(ctx context.Context, id int64) error
}
