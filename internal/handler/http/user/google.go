package user

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type GoogleHandler struct{ Svc *userUC.Service }

// ServeHTTP backs Google sign-in: it returns the existing account for the
// posted email or creates one with the normal role. 201 means a fresh account,
// 200 an existing one.
func (h GoogleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	usr, created, err := h.Svc.RegisterIfAbsent(r.Context(), userUC.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	respond.JSON(w, code, toDTO(usr))
}
