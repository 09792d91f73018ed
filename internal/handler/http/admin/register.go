package admin

import (
	"log/slog"
	"net/http"

	"inkpress/internal/common/pagination"
	cmtUC "inkpress/internal/usecase/comment"
)

// Register registers the moderation routes with the given mux.
// Access control is expected to happen in front of the API; a reverse
// proxy restricts the /api/admin/ prefix.
func Register(mux *http.ServeMux, svc *cmtUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/admin/comment", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /api/admin/comment/{id}", DetailHandler{svc})
	mux.Handle("DELETE /api/admin/comment/{id}", DeleteHandler{Svc: svc, Logger: logger})
}
