// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"inkpress/internal/domain/entity"
)

// ArticleRepository provides persistent storage for articles.
// Lookup methods return (nil, nil) when no row matches.
type ArticleRepository interface {
	// Get retrieves an article by ID regardless of status or type.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetPublishedPost retrieves a published post-type article by ID.
	GetPublishedPost(ctx context.Context, id int64) (*entity.Article, error)
	// GetPublishedPageByTitle retrieves a published page-type article by its title.
	GetPublishedPageByTitle(ctx context.Context, title string) (*entity.Article, error)
	// ListPublishedPosts retrieves published posts ordered by creation time
	// descending, using LIMIT/OFFSET pagination.
	ListPublishedPosts(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	// CountPublishedPosts returns the number of published posts, used for
	// pagination metadata.
	CountPublishedPosts(ctx context.Context) (int64, error)
	// UpdateHits sets the persisted hit count of an article to an absolute
	// value. The caller (the hit aggregator) computes the value as
	// persisted + pending under its per-article lock.
	UpdateHits(ctx context.Context, id int64, hits int64) error
	// AddCommentCount atomically adjusts an article's comment count by
	// delta (+1 on comment creation, -1 on deletion). The adjustment is a
	// single SQL statement so concurrent comment writes never lose updates.
	AddCommentCount(ctx context.Context, id int64, delta int64) error
}
