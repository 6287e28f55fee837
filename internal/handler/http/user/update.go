package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type UpdateProfileHandler struct{ Svc *userUC.Service }

// ServeHTTP applies a partial profile update. Absent fields are left alone.
func (h UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	var req struct {
		Name      *string `json:"name"`
		PhotoURL  *string `json:"photo_url"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		BirthDate *string `json:"birth_date"`
		Gender    *string `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err := h.Svc.UpdateProfile(r.Context(), email, userUC.ProfileInput{
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	})
	if err != nil {
		if errors.Is(err, userUC.ErrUserNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
