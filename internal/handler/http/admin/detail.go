package admin

import (
	"errors"
	"net/http"

	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	cmtUC "inkpress/internal/usecase/comment"
)

// DetailHandler serves one comment for moderation, parent resolved and
// content rendered.
type DetailHandler struct{ Svc *cmtUC.Service }

func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, "invalid comment ID")
		return
	}

	detail, err := h.Svc.Detail(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, cmtUC.ErrInvalidCommentID):
			respond.Fail(w, "invalid comment ID")
		case errors.Is(err, cmtUC.ErrCommentNotFound):
			respond.NotFound(w, "comment not found")
		default:
			respond.FailSafe(w, err)
		}
		return
	}

	respond.OK(w, DetailFromEntity(detail))
}
