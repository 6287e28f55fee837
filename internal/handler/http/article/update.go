package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a content edit. Only the author may edit; absent fields
// are left alone.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractSegmentID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title       *string  `json:"title"`
		ImageURL    *string  `json:"image_url"`
		Publisher   *string  `json:"publisher"`
		Tags        []string `json:"tags"`
		Description *string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), auth.EmailFromContext(r.Context()), artUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Publisher:   req.Publisher,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, artUC.ErrNotAuthor):
			respond.SafeError(w, http.StatusForbidden, err)
		default:
			respond.SafeError(w, http.StatusBadRequest, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
