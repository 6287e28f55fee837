package user

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP fetches one account by the email path segment.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	usr, err := h.Svc.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(usr))
}
