package user

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type PromoteHandler struct{ Svc *userUC.Service }

// ServeHTTP grants the admin role to the account in the path.
func (h PromoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractSegmentID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.PromoteToAdmin(r.Context(), id); err != nil {
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
