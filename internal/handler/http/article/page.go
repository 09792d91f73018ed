package article

import (
	"errors"
	"net/http"

	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// PageHandler serves a published standalone page by title. Pages do not
// count views.
type PageHandler struct{ Svc *artUC.Service }

func (h PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.GetPage(r.Context(), r.PathValue("title"))
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.NotFound(w, "page not found")
			return
		}
		respond.FailSafe(w, err)
		return
	}

	respond.OK(w, FromEntity(page))
}
