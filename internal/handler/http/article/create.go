package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type SubmitHandler struct{ Svc *artUC.Service }

// ServeHTTP submits a new article on behalf of the token subject. The article
// starts pending; a non-subscribed author who already holds an article gets
// 402 until a premium window is live.
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		ImageURL    string   `json:"image_url"`
		Publisher   string   `json:"publisher"`
		Tags        []string `json:"tags"`
		Description string   `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Submit(r.Context(), artUC.SubmitInput{
		AuthorEmail: auth.EmailFromContext(r.Context()),
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Publisher:   req.Publisher,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrPremiumRequired):
			respond.SafeError(w, http.StatusPaymentRequired, err)
		case errors.Is(err, artUC.ErrAuthorNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		default:
			respond.SafeError(w, http.StatusBadRequest, err)
		}
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
