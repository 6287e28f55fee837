package auth

import (
	"fmt"
	"os"
	"strings"
)

// weakSecretList contains common weak values that must never be used as the
// signing secret.
var weakSecretList = []string{
	"secret",
	"password",
	"changeme",
	"jwt_secret",
	"jwtsecret",
	"123456",
	"123456789",
	"qwerty",
	"test",
	"default",
	"admin",
}

// minSecretLength is the minimum required length for JWT_SECRET.
const minSecretLength = 32

// ValidateSecret validates JWT_SECRET at application startup. It must be
// called before the server starts; a missing or weak secret makes every
// issued token forgeable.
//
// Requirements:
//   - JWT_SECRET must not be empty
//   - at least 32 characters
//   - must not match common weak values
//
// The returned error is safe to log and does not include the secret itself.
func ValidateSecret() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters, got %d", minSecretLength, len(secret))
	}
	lower := strings.ToLower(secret)
	for _, weak := range weakSecretList {
		if lower == weak {
			return fmt.Errorf("JWT_SECRET matches a known weak value")
		}
	}
	return nil
}
