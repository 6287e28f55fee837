// Package user provides use cases for account management: registration,
// Google sign-in, profile updates, role grants and premium subscriptions.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that no account exists for the given email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates that an account with the email already exists.
	ErrDuplicateUser = errors.New("user with this email already exists")

	// ErrInvalidUserID indicates that the provided user ID is invalid.
	// User IDs must be positive integers.
	ErrInvalidUserID = errors.New("invalid user ID")
)
