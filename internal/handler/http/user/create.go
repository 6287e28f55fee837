package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type CreateHandler struct{ Svc *userUC.Service }

// ServeHTTP creates a new account with the normal role.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	usr, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, userUC.ErrDuplicateUser) {
			respond.SafeError(w, http.StatusConflict, err)
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(usr))
}
