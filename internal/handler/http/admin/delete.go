package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	cmtUC "inkpress/internal/usecase/comment"
)

// DeleteHandler removes a comment and keeps the article's comment count
// consistent.
type DeleteHandler struct {
	Svc    *cmtUC.Service
	Logger *slog.Logger
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Fail(w, "invalid comment ID")
		return
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, cmtUC.ErrInvalidCommentID):
			respond.Fail(w, "invalid comment ID")
		// Mutations report missing targets as failures, not 404s.
		case errors.Is(err, cmtUC.ErrCommentNotFound):
			respond.Fail(w, "comment not found")
		default:
			logger.Error("failed to delete comment",
				"error", err.Error(),
				"comment_id", id)
			respond.FailSafe(w, err)
		}
		return
	}

	logger.Info("comment deleted", "comment_id", id)
	respond.OKMessage(w, "comment deleted")
}
