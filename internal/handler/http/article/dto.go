// Package article provides HTTP handlers for the reader-facing article
// endpoints: the published post list, single post reads and standalone
// pages.
package article

import (
	"time"

	"inkpress/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
// Content carries rendered HTML: the full body on detail reads, the
// summary on list reads.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Title        string    `json:"title" example:"Go 1.25 リリース"`
	Content      string    `json:"content" example:"<p>Go 1.25 がリリースされました。</p>"`
	AuthorID     int64     `json:"author_id" example:"1"`
	Hits         int64     `json:"hits" example:"42"`
	Tags         string    `json:"tags" example:"go,release"`
	Category     string    `json:"category" example:"tech"`
	AllowComment bool      `json:"allow_comment" example:"true"`
	CommentCount int64     `json:"comment_count" example:"3"`
	CreatedAt    time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	ModifiedAt   time.Time `json:"modified_at" example:"2025-10-26T12:00:00Z"`
}

// FromEntity converts a domain article to its transfer representation.
func FromEntity(a *entity.Article) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		AuthorID:     a.AuthorID,
		Hits:         a.Hits,
		Tags:         a.Tags,
		Category:     a.Category,
		AllowComment: a.AllowComment,
		CommentCount: a.CommentCount,
		CreatedAt:    a.CreatedAt,
		ModifiedAt:   a.ModifiedAt,
	}
}
