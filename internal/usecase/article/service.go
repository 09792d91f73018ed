package article

import (
	"context"
	"fmt"
	"strings"

	"inkpress/internal/common/pagination"
	"inkpress/internal/domain/entity"
	"inkpress/internal/infra/render"
	"inkpress/internal/repository"
)

// moreMarker splits an article body into summary and remainder.
// Everything before the marker becomes the list-view summary.
const moreMarker = "<!--more-->"

// HitRecorder absorbs view events for published posts. Recording never
// fails; flushing to storage is the recorder's own concern.
type HitRecorder interface {
	RecordHit(ctx context.Context, articleID, persistedHits int64)
}

// Service provides reader-facing article use cases.
// It handles business logic for article reads and delegates persistence to the repository.
type Service struct {
	Repo     repository.ArticleRepository
	Renderer render.Renderer
	Hits     HitRecorder
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// GetPublished retrieves a published post by its ID and records one view
// against it. The returned article's Content holds rendered HTML.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if no published post matches; drafts are
// not distinguishable from missing rows.
func (s *Service) GetPublished(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.GetPublishedPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get published post: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	html, err := s.Renderer.Render(art.Content)
	if err != nil {
		return nil, fmt.Errorf("render article content: %w", err)
	}
	art.Content = html

	// The view counts even if the in-memory flush later fails.
	s.Hits.RecordHit(ctx, art.ID, art.Hits)
	return art, nil
}

// ListPublished retrieves published posts with pagination support,
// ordered newest first. Each article's Content is replaced by its
// rendered summary (the body up to the more-marker).
func (s *Service) ListPublished(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}

	articles, err := s.Repo.ListPublishedPosts(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}

	for _, art := range articles {
		html, err := s.Renderer.Render(summaryOf(art.Content))
		if err != nil {
			return nil, fmt.Errorf("render article summary: %w", err)
		}
		art.Content = html
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// GetPage retrieves a published standalone page by its title.
// Returns ErrArticleNotFound if no published page matches.
func (s *Service) GetPage(ctx context.Context, title string) (*entity.Article, error) {
	if title == "" {
		return nil, ErrArticleNotFound
	}

	page, err := s.Repo.GetPublishedPageByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get published page: %w", err)
	}
	if page == nil {
		return nil, ErrArticleNotFound
	}

	html, err := s.Renderer.Render(page.Content)
	if err != nil {
		return nil, fmt.Errorf("render page content: %w", err)
	}
	page.Content = html
	return page, nil
}

// summaryOf returns the part of a body shown in list views.
func summaryOf(content string) string {
	if idx := strings.Index(content, moreMarker); idx >= 0 {
		return content[:idx]
	}
	return content
}
