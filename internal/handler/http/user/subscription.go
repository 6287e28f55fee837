package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type SubscribeHandler struct{ Svc *userUC.Service }

// ServeHTTP opens a premium window for the account. The time field is the
// window length in seconds, counted from now.
func (h SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Time  int64  `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := entity.ValidateEmail(req.Email); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	endAt, err := h.Svc.Subscribe(r.Context(), req.Email, time.Duration(req.Time)*time.Second)
	if err != nil {
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]time.Time{"premium_end_at": endAt})
}

type UnsubscribeHandler struct{ Svc *userUC.Service }

// ServeHTTP clears the premium window for the account in the email query
// parameter.
func (h UnsubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := entity.ValidateEmail(email); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Unsubscribe(r.Context(), email); err != nil {
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
