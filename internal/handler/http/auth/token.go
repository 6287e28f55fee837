package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/requestid"
)

// DefaultTokenTTL is the token lifetime when TOKEN_TTL is not set.
const DefaultTokenTTL = 20 * 24 * time.Hour

type tokenRequest struct {
	Email string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// RoleSource resolves whether an account holds the admin role.
// Implemented by the user service; unknown accounts resolve to normal.
type RoleSource interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// TokenTTL returns the configured token lifetime. TOKEN_TTL accepts any Go
// duration string; invalid or missing values fall back to DefaultTokenTTL.
func TokenTTL() time.Duration {
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			return ttl
		}
	}
	return DefaultTokenTTL
}

// TokenHandler issues a signed JWT for the posted email. The role claim comes
// from the user store so a stolen token cannot self-assign admin.
func TokenHandler(roles RoleSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RecordAuthRequest("unknown", "failure")
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := entity.ValidateEmail(req.Email); err != nil {
			RecordAuthRequest("unknown", "failure")
			http.Error(w, "invalid email", http.StatusBadRequest)
			return
		}

		role := entity.RoleNormal
		admin, err := roles.IsAdmin(r.Context(), req.Email)
		if err != nil {
			logger.Error("role lookup failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if admin {
			role = entity.RoleAdmin
		}

		secret := []byte(os.Getenv("JWT_SECRET"))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  req.Email,
			"role": string(role),
			"exp":  time.Now().Add(TokenTTL()).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(string(role), "failure")
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("token issued",
			slog.String("user_email", req.Email),
			slog.String("role", string(role)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest(string(role), "success")
		RecordAuthDuration(string(role), time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: signed})
	}
}
