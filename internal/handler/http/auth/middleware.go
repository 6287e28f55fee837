// Package auth provides JWT issuance and verification for the HTTP surface.
// Tokens are HS256, carry the account email as subject plus a role claim, and
// are verified by the Authz middleware before any protected handler runs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
)

type ctxKey string

const (
	ctxEmail ctxKey = "email"
	ctxRole  ctxKey = "role"
)

// EmailFromContext returns the authenticated account email, or "" when the
// request did not pass through Authz.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(ctxEmail).(string)
	return email
}

// RoleFromContext returns the authenticated role, or "" when the request did
// not pass through Authz.
func RoleFromContext(ctx context.Context) entity.Role {
	role, _ := ctx.Value(ctxRole).(entity.Role)
	return role
}

// ContextWithIdentity returns a context carrying the given identity, exactly
// as Authz establishes it after a successful token check.
func ContextWithIdentity(ctx context.Context, email string, role entity.Role) context.Context {
	ctx = context.WithValue(ctx, ctxEmail, email)
	return context.WithValue(ctx, ctxRole, role)
}

// Authz requires a valid bearer token and attaches the subject email and role
// to the request context. Every failure branch writes 401 and returns; no
// request continues past a failed check.
func Authz(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, role, err := validateJWT(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), email, role)))
	})
}

// RequireAdmin rejects non-admin callers with 403. It must run inside Authz,
// which establishes the role in the context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := RoleFromContext(r.Context())
		if role != entity.RoleAdmin {
			RecordForbiddenAttempt(string(role), r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validateJWT(authz string, secret []byte) (string, entity.Role, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", "", errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("invalid sub claim")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", errors.New("invalid role claim")
	}
	role := entity.Role(roleStr)
	if !role.Valid() {
		return "", "", errors.New("unknown role")
	}
	return sub, role, nil
}
