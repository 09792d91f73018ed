// Package comment provides HTTP handlers for the reader-facing comment
// endpoints: posting, per-article listing and assessment.
package comment

import (
	"time"

	"inkpress/internal/domain/entity"
)

// DTO represents the JSON structure for comment data transfer on the
// public API. Email, IP and user agent are captured at creation but
// never exposed to readers.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	ArticleID int64     `json:"article_id" example:"1"`
	ParentID  *int64    `json:"parent_id,omitempty" example:"2"`
	Content   string    `json:"content" example:"<p>同感です。</p>"`
	Name      string    `json:"name" example:"alice"`
	Website   string    `json:"website" example:"https://alice.example.com"`
	Agree     int64     `json:"agree" example:"3"`
	Disagree  int64     `json:"disagree" example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
}

// DetailDTO is a comment together with its resolved parent, when any.
type DetailDTO struct {
	DTO
	Parent *DTO `json:"parent,omitempty"`
}

// FromEntity converts a domain comment to its public representation.
func FromEntity(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Name:      c.Name,
		Website:   c.Website,
		Agree:     c.Agree,
		Disagree:  c.Disagree,
		CreatedAt: c.CreatedAt,
	}
}

// DetailFromEntity converts a comment detail to its public representation.
func DetailFromEntity(d *entity.CommentDetail) DetailDTO {
	out := DetailDTO{DTO: FromEntity(&d.Comment)}
	if d.Parent != nil {
		parent := FromEntity(d.Parent)
		out.Parent = &parent
	}
	return out
}
