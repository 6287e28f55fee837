// Package user provides HTTP handlers for account endpoints: registration,
// Google sign-in, profiles, role grants and premium subscriptions.
package user

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for account data transfer.
type DTO struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Role         string     `json:"role"`
	PremiumEndAt *time.Time `json:"premium_end_at,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	BirthDate    *string    `json:"birth_date,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PhotoURL:     u.PhotoURL,
		Role:         string(u.Role),
		PremiumEndAt: u.PremiumEndAt,
		Phone:        u.Phone,
		Address:      u.Address,
		BirthDate:    u.BirthDate,
		Gender:       u.Gender,
		CreatedAt:    u.CreatedAt,
	}
}
