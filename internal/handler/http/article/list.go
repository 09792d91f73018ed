package article

import (
	"log/slog"
	"net/http"
	"time"

	"inkpress/internal/common/pagination"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	artUC "inkpress/internal/usecase/article"
)

// ListHandler serves the published post list, newest first, with
// pagination. Content carries each post's rendered summary.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.Fail(w, err.Error())
		return
	}

	result, err := h.Svc.ListPublished(ctx, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		respond.FailSafe(w, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, FromEntity(item))
	}

	logger.Info("article list served",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.OK(w, pagination.NewResponse(dtos, result.Pagination))
}
