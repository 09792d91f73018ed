package article

import (
	"errors"
	"net/http"

	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// GetHandler serves a single published post. Reading a post records one
// view against it.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, "invalid article ID")
		return
	}

	art, err := h.Svc.GetPublished(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrInvalidArticleID):
			respond.Fail(w, "invalid article ID")
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.NotFound(w, "article not found")
		default:
			respond.FailSafe(w, err)
		}
		return
	}

	respond.OK(w, FromEntity(art))
}
