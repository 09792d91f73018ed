package comment

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"inkpress/internal/common/pagination"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	cmtUC "inkpress/internal/usecase/comment"
)

// ListHandler serves the comments of one published article, oldest
// first, with pagination. The article is selected by the article_id
// query parameter.
type ListHandler struct {
	Svc           *cmtUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	articleID, err := strconv.ParseInt(r.URL.Query().Get("article_id"), 10, 64)
	if err != nil || articleID <= 0 {
		respond.Fail(w, "invalid query parameter: article_id must be a positive integer")
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.Fail(w, err.Error())
		return
	}

	result, err := h.Svc.ListByArticle(ctx, articleID, params)
	if err != nil {
		if errors.Is(err, cmtUC.ErrArticleNotFound) {
			respond.NotFound(w, "article not found")
			return
		}
		logger.Error("failed to list comments",
			"error", err.Error(),
			"article_id", articleID)
		respond.FailSafe(w, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, FromEntity(item))
	}

	respond.OK(w, pagination.NewResponse(dtos, result.Pagination))
}
