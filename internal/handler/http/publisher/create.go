package publisher

import (
	"encoding/json"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
	pubUC "newsdesk/internal/usecase/publisher"
)

// DTO represents the JSON structure for publisher data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateHandler struct{ Svc *pubUC.Service }

// ServeHTTP registers a new publisher.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		LogoURL string `json:"logo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pub, err := h.Svc.Create(r.Context(), pubUC.CreateInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, DTO{
		ID:        pub.ID,
		Name:      pub.Name,
		LogoURL:   pub.LogoURL,
		CreatedAt: pub.CreatedAt,
	})
}
