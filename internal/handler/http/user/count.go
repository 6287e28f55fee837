package user

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

type CountHandler struct{ Svc *userUC.Service }

// ServeHTTP returns account counts per subscription tier.
func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Svc.CountByTier(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, errors.New("failed to count users"))
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{
		"all":     counts.All,
		"premium": counts.Premium,
		"normal":  counts.Normal,
	})
}
