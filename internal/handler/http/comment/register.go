package comment

import (
	"log/slog"
	"net/http"

	"inkpress/internal/common/pagination"
	cmtUC "inkpress/internal/usecase/comment"
)

// Register registers the reader-facing comment routes with the given
// mux. limit wraps the write endpoints, which take anonymous input and
// are therefore rate limited per IP.
func Register(mux *http.ServeMux, svc *cmtUC.Service, paginationCfg pagination.Config, logger *slog.Logger, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("GET    /api/comment", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST   /api/comment", limit(CreateHandler{Svc: svc, Logger: logger}))
	mux.Handle("POST   /api/comment/{id}/assess", limit(AssessHandler{svc}))
}
