// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User, Article and Publisher, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Role is the access level assigned to a user account.
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleNormal || r == RoleAdmin
}

// User represents a registered reader or author account.
// PremiumEndAt is nil for users without a subscription; a non-nil value in
// the past means the subscription has lapsed but has not been swept yet.
type User struct {
	ID           int64
	Email        string
	Name         string
	PhotoURL     string
	Role         Role
	PremiumEndAt *time.Time
	Phone        *string
	Address      *string
	BirthDate    *string
	Gender       *string
	CreatedAt    time.Time
}

// IsSubscribed reports whether the user holds an active premium subscription
// at the given instant. The window is exclusive: a subscription ending exactly
// now is no longer active.
func (u *User) IsSubscribed(now time.Time) bool {
	return u.PremiumEndAt != nil && u.PremiumEndAt.After(now)
}
