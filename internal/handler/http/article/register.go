package article

import (
	"log/slog"
	"net/http"

	"inkpress/internal/common/pagination"
	artUC "inkpress/internal/usecase/article"
)

// Register registers the reader-facing article routes with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/article", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /api/article/{id}", GetHandler{svc})
	mux.Handle("GET    /api/page/{title}", PageHandler{svc})
}
