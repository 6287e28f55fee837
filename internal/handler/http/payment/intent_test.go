package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sony/gobreaker"

	"newsdesk/internal/handler/http/payment"
	payUC "newsdesk/internal/usecase/payment"
)

type stubCreator struct {
	secret     string
	err        error
	lastAmount int64
}

func (s *stubCreator) CreateIntent(_ context.Context, amount int64, _ string) (string, error) {
	s.lastAmount = amount
	return s.secret, s.err
}

func TestIntentHandler_Success(t *testing.T) {
	stub := &stubCreator{secret: "pi_123_secret_456"}
	handler := payment.IntentHandler{Svc: &payUC.Service{Client: stub}}

	req := httptest.NewRequest(http.MethodPost, "/payments/intent",
		strings.NewReader(`{"price":9.99}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var resp struct {
		ClientSecret string `json:"client_secret"`
		Amount       int64  `json:"amount"`
		Currency     string `json:"currency"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret_456" {
		t.Errorf("ClientSecret = %q", resp.ClientSecret)
	}
	if resp.Amount != 999 || stub.lastAmount != 999 {
		t.Errorf("Amount = %d, want 999", resp.Amount)
	}
	if resp.Currency != "usd" {
		t.Errorf("Currency = %q, want usd", resp.Currency)
	}
}

func TestIntentHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "zero price", body: `{"price":0}`},
		{name: "negative price", body: `{"price":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := payment.IntentHandler{Svc: &payUC.Service{Client: &stubCreator{}}}
			req := httptest.NewRequest(http.MethodPost, "/payments/intent", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestIntentHandler_ProviderUnavailable(t *testing.T) {
	stub := &stubCreator{err: gobreaker.ErrOpenState}
	handler := payment.IntentHandler{Svc: &payUC.Service{Client: stub}}

	req := httptest.NewRequest(http.MethodPost, "/payments/intent",
		strings.NewReader(`{"price":9.99}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
