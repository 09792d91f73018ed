package comment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/realip"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	cmtUC "inkpress/internal/usecase/comment"
)

// createRequest is the JSON body accepted by the comment post endpoint.
// IP and user agent come from the request itself, not the body.
type createRequest struct {
	ArticleID int64  `json:"article_id" example:"1"`
	ParentID  *int64 `json:"parent_id,omitempty" example:"2"`
	Content   string `json:"content" example:"同感です。"`
	Name      string `json:"name" example:"alice"`
	Email     string `json:"email" example:"alice@example.com"`
	Website   string `json:"website" example:"https://alice.example.com"`
}

// CreateHandler persists a new comment on a published article and
// responds with the created comment, parent resolved and rendered.
type CreateHandler struct {
	Svc    *cmtUC.Service
	Logger *slog.Logger
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, "invalid request body")
		return
	}

	detail, err := h.Svc.Post(ctx, cmtUC.PostInput{
		ArticleID: req.ArticleID,
		ParentID:  req.ParentID,
		Content:   req.Content,
		Name:      req.Name,
		Email:     req.Email,
		Website:   req.Website,
		IP:        realip.FromRequest(r),
		Agent:     r.Header.Get("User-Agent"),
	})
	if err != nil {
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			respond.Fail(w, ve.Error())
		// Mutations report missing targets as failures, not 404s.
		case errors.Is(err, cmtUC.ErrArticleNotFound):
			respond.Fail(w, "article not found")
		case errors.Is(err, cmtUC.ErrCommentsDisabled):
			respond.Fail(w, "comments are disabled for this article")
		case errors.Is(err, cmtUC.ErrCommentNotFound):
			// Referenced parent does not exist on this article.
			respond.Fail(w, "parent comment not found")
		default:
			logger.Error("failed to create comment",
				"error", err.Error(),
				"article_id", req.ArticleID)
			respond.FailSafe(w, err)
		}
		return
	}

	logger.Info("comment created",
		"comment_id", detail.ID,
		"article_id", detail.ArticleID)

	respond.OK(w, DetailFromEntity(detail))
}
