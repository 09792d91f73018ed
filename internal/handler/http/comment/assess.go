package comment

import (
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	cmtUC "inkpress/internal/usecase/comment"
)

// AssessHandler records a reader's agree/disagree verdict on a comment.
// The verdict token travels in the "assess" form value.
type AssessHandler struct{ Svc *cmtUC.Service }

func (h AssessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, "invalid comment ID")
		return
	}

	if err := h.Svc.Assess(r.Context(), id, r.FormValue("assess")); err != nil {
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			respond.Fail(w, ve.Error())
		case errors.Is(err, cmtUC.ErrInvalidCommentID):
			respond.Fail(w, "invalid comment ID")
		// Mutations report missing targets as failures, not 404s.
		case errors.Is(err, cmtUC.ErrCommentNotFound):
			respond.Fail(w, "comment not found")
		default:
			respond.FailSafe(w, err)
		}
		return
	}

	respond.OKMessage(w, "assessment recorded")
}
