package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// moderationStatus maps a moderation outcome to an HTTP status. Approve and
// decline share the same guarded transition out of pending.
func moderationStatus(err error) int {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, artUC.ErrAlreadyDecided):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type ApproveHandler struct{ Svc *artUC.Service }

// ServeHTTP moves a pending article to approved.
func (h ApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractSegmentID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Approve(r.Context(), id); err != nil {
		respond.SafeError(w, moderationStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeclineHandler struct{ Svc *artUC.Service }

// ServeHTTP moves a pending article to declined, recording the reason.
func (h DeclineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractSegmentID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Decline(r.Context(), id, req.Reason); err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, moderationStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type PremiumFlagHandler struct{ Svc *artUC.Service }

// ServeHTTP flags an article as premium. The flag is one-directional.
func (h PremiumFlagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractSegmentID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.MarkPremium(r.Context(), id); err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
