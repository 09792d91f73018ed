// Package admin provides the moderation HTTP handlers: the cross-article
// comment index, comment detail and deletion.
package admin

import (
	"time"

	"inkpress/internal/domain/entity"
)

// CommentDTO is the moderation view of a comment. Unlike the public
// representation it includes the submitter's email, IP and user agent.
type CommentDTO struct {
	ID        int64     `json:"id" example:"1"`
	ArticleID int64     `json:"article_id" example:"1"`
	ParentID  *int64    `json:"parent_id,omitempty" example:"2"`
	Content   string    `json:"content" example:"同感です。"`
	Name      string    `json:"name" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Website   string    `json:"website" example:"https://alice.example.com"`
	IP        string    `json:"ip" example:"203.0.113.7"`
	Agent     string    `json:"agent" example:"Mozilla/5.0"`
	Agree     int64     `json:"agree" example:"3"`
	Disagree  int64     `json:"disagree" example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
}

// CommentDetailDTO is a moderation comment with its resolved parent.
type CommentDetailDTO struct {
	CommentDTO
	Parent *CommentDTO `json:"parent,omitempty"`
}

// FromEntity converts a domain comment to its moderation representation.
func FromEntity(c *entity.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Name:      c.Name,
		Email:     c.Email,
		Website:   c.Website,
		IP:        c.IP,
		Agent:     c.Agent,
		Agree:     c.Agree,
		Disagree:  c.Disagree,
		CreatedAt: c.CreatedAt,
	}
}

// DetailFromEntity converts a comment detail to its moderation representation.
func DetailFromEntity(d *entity.CommentDetail) CommentDetailDTO {
	out := CommentDetailDTO{CommentDTO: FromEntity(&d.Comment)}
	if d.Parent != nil {
		parent := FromEntity(d.Parent)
		out.Parent = &parent
	}
	return out
}
