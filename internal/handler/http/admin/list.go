package admin

import (
	"log/slog"
	"net/http"

	"inkpress/internal/common/pagination"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	cmtUC "inkpress/internal/usecase/comment"
)

// ListHandler serves the moderation comment index across all articles,
// newest first, with pagination. Content is the raw source text; the
// detail view renders.
type ListHandler struct {
	Svc           *cmtUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.Fail(w, err.Error())
		return
	}

	result, err := h.Svc.ListAll(ctx, params)
	if err != nil {
		logger.Error("failed to list comments for moderation",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		respond.FailSafe(w, err)
		return
	}

	dtos := make([]CommentDTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, FromEntity(item))
	}

	respond.OK(w, pagination.NewResponse(dtos, result.Pagination))
}
