package comment

import (
	"context"
	"fmt"
	"strings"

	"inkpress/internal/common/pagination"
	"inkpress/internal/domain/entity"
	"inkpress/internal/infra/render"
	"inkpress/internal/observability/metrics"
	"inkpress/internal/repository"
	"inkpress/internal/usecase/notify"
)

// PostInput represents the input parameters for posting a new comment.
// IP and Agent are captured from the request by the handler.
type PostInput struct {
	ArticleID int64
	ParentID  *int64
	Content   string
	Name      string
	Email     string
	Website   string
	IP        string
	Agent     string
}

// Service provides comment use cases.
// It handles business logic for comment operations and delegates
// persistence to the repositories. Notification dispatch is best-effort
// and never affects the outcome of a post.
type Service struct {
	Comments repository.CommentRepository
	Articles repository.ArticleRepository
	Renderer render.Renderer
	Notifier notify.Service
}

// PaginatedResult represents the result of a paginated comment query.
type PaginatedResult struct {
	Data       []*entity.Comment
	Pagination pagination.Metadata
}

// Post creates a new comment on a published article and dispatches
// notifications for it. The comment is persisted first; a notification
// failure never rolls it back.
// Returns a ValidationError if a required field is missing.
// Returns ErrArticleNotFound if the article does not exist or is not published.
// Returns ErrCommentsDisabled if the article does not accept comments.
// Returns ErrCommentNotFound if the referenced parent comment does not exist.
func (s *Service) Post(ctx context.Context, in PostInput) (*entity.CommentDetail, error) {
	if in.ArticleID <= 0 {
		return nil, ErrArticleNotFound
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}

	art, err := s.Articles.GetPublishedPost(ctx, in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	if !art.AllowComment {
		return nil, ErrCommentsDisabled
	}

	if in.ParentID != nil {
		parent, err := s.Comments.Get(ctx, *in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		// A parent must exist on the same article.
		if parent == nil || parent.ArticleID != in.ArticleID {
			return nil, ErrCommentNotFound
		}
	}

	c := &entity.Comment{
		ArticleID: in.ArticleID,
		ParentID:  in.ParentID,
		Content:   in.Content,
		Name:      in.Name,
		Email:     in.Email,
		Website:   in.Website,
		IP:        in.IP,
		Agent:     in.Agent,
	}

	id, err := s.Comments.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	metrics.RecordCommentCreated()

	if err := s.Articles.AddCommentCount(ctx, in.ArticleID, 1); err != nil {
		return nil, fmt.Errorf("increment comment count: %w", err)
	}

	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load comment detail: %w", err)
	}

	// Best effort: always returns nil, failures are handled internally.
	_ = s.Notifier.NotifyNewComment(ctx, detail)
	return detail, nil
}

// ListByArticle retrieves the comments of one article with pagination
// support, oldest first. Each comment's Content is rendered to HTML.
// Returns ErrArticleNotFound if the article does not exist or is not published.
func (s *Service) ListByArticle(ctx context.Context, articleID int64, params pagination.Params) (*PaginatedResult, error) {
	if articleID <= 0 {
		return nil, ErrArticleNotFound
	}

	art, err := s.Articles.GetPublishedPost(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Comments.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	comments, err := s.Comments.ListByArticle(ctx, articleID, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	for _, c := range comments {
		html, err := s.Renderer.Render(c.Content)
		if err != nil {
			return nil, fmt.Errorf("render comment content: %w", err)
		}
		c.Content = html
	}

	return &PaginatedResult{
		Data: comments,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// ListAll retrieves comments across all articles with pagination
// support, newest first. Content is returned raw; the moderation index
// shows source text, rendering happens on the detail view.
func (s *Service) ListAll(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Comments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	comments, err := s.Comments.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &PaginatedResult{
		Data: comments,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Detail retrieves a comment together with its resolved parent.
// Threading is single-level: the parent's own parent is never resolved.
// Content is rendered to HTML on both the comment and the parent.
// Returns ErrInvalidCommentID if the ID is not positive.
// Returns ErrCommentNotFound if the comment does not exist. A dangling
// parent reference is not an error; Parent is left nil.
func (s *Service) Detail(ctx context.Context, id int64) (*entity.CommentDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}

	c, err := s.Comments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}

	html, err := s.Renderer.Render(c.Content)
	if err != nil {
		return nil, fmt.Errorf("render comment content: %w", err)
	}
	c.Content = html

	detail := &entity.CommentDetail{Comment: *c}
	if c.ParentID != nil {
		parent, err := s.Comments.Get(ctx, *c.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent != nil {
			html, err := s.Renderer.Render(parent.Content)
			if err != nil {
				return nil, fmt.Errorf("render parent content: %w", err)
			}
			parent.Content = html
			detail.Parent = parent
		}
	}
	return detail, nil
}

// Assess records a reader's verdict on a comment. The increment is a
// single atomic storage operation, so concurrent assessments never lose
// updates.
// Returns ErrInvalidCommentID if the ID is not positive.
// Returns a ValidationError if the assessment token is unknown.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) Assess(ctx context.Context, id int64, assess string) error {
	if id <= 0 {
		return ErrInvalidCommentID
	}

	kind, err := entity.ParseAssessKind(assess)
	if err != nil {
		return err
	}

	ok, err := s.Comments.IncrementAssessment(ctx, id, kind)
	if err != nil {
		return fmt.Errorf("increment assessment: %w", err)
	}
	if !ok {
		return ErrCommentNotFound
	}
	metrics.RecordAssessment(string(kind))
	return nil
}

// Delete removes a comment and decrements its article's comment count.
// Returns ErrInvalidCommentID if the ID is not positive.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCommentID
	}

	c, err := s.Comments.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return ErrCommentNotFound
	}

	if err := s.Comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if err := s.Articles.AddCommentCount(ctx, c.ArticleID, -1); err != nil {
		return fmt.Errorf("decrement comment count: %w", err)
	}
	return nil
}
