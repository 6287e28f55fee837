package respond

import (
	"regexp"
)

var (
	// Stripe secret keys (sk_live_..., sk_test_...) must never reach logs.
	stripeKeyPattern = regexp.MustCompile(`sk_(live|test)_[a-zA-Z0-9]+`)
	// generic bearer-style secret keys
	secretKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// database passwords inside DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = stripeKeyPattern.ReplaceAllString(msg, "sk_${1}_****")
	msg = secretKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
