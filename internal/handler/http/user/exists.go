package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type ExistsHandler struct{ Svc *userUC.Service }

// ServeHTTP reports whether an account is registered for the posted email.
func (h ExistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := entity.ValidateEmail(req.Email); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	exists, err := h.Svc.Exists(r.Context(), req.Email)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, errors.New("failed to check user"))
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"exists": exists})
}
