package user

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type PremiumStatusHandler struct{ Svc *userUC.Service }

// ServeHTTP reports whether the account holds a live premium window.
// Unknown emails report false rather than 404 so the probe leaks nothing.
func (h PremiumStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := entity.ValidateEmail(email); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	subscribed, err := h.Svc.IsSubscribed(r.Context(), email)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, errors.New("failed to check subscription"))
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"is_premium": subscribed})
}

type AdminStatusHandler struct{ Svc *userUC.Service }

// ServeHTTP reports whether the account holds the admin role.
func (h AdminStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := entity.ValidateEmail(email); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	admin, err := h.Svc.IsAdmin(r.Context(), email)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, errors.New("failed to check role"))
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"is_admin": admin})
}
