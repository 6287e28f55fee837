// Package payment provides the HTTP handler for creating Stripe payment
// intents backing premium subscription checkout.
package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	payUC "newsdesk/internal/usecase/payment"
)

// Register registers the payment HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *payUC.Service) {
	mux.Handle("POST   /payments/intent", auth.Authz(IntentHandler{svc}))
}

type IntentHandler struct{ Svc *payUC.Service }

// ServeHTTP creates a payment intent for the posted price (major currency
// units) and returns the client secret the frontend confirms with.
func (h IntentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	intent, err := h.Svc.CreateIntent(r.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payUC.ErrPaymentUnavailable) {
			respond.SafeError(w, http.StatusServiceUnavailable, err)
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"client_secret": intent.ClientSecret,
		"amount":        intent.AmountMinorUnits,
		"currency":      intent.Currency,
	})
}
