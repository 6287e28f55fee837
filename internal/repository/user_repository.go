// Package repository defines the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"newsdesk/internal/domain/entity"
)

// TierCounts holds the per-tier user totals reported by the dashboard.
// Premium counts users whose subscription window is strictly in the future.
type TierCounts struct {
	All     int64
	Premium int64
	Normal  int64
}

// ProfileUpdate carries a partial profile update.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name      *string
	PhotoURL  *string
	Phone     *string
	Address   *string
	BirthDate *string
	Gender    *string
}

type UserRepository interface {
	// GetByEmail returns (nil, nil) if no user with the email exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *entity.User) error
	UpdateProfile(ctx context.Context, email string, fields ProfileUpdate) error
	// GrantAdminRole promotes the user with the given ID to admin.
	GrantAdminRole(ctx context.Context, id int64) error
	// SetSubscriptionEnd sets premium_end_at to the given instant.
	SetSubscriptionEnd(ctx context.Context, email string, endAt time.Time) error
	// ClearSubscription nulls out premium_end_at.
	ClearSubscription(ctx context.Context, email string) error
	// ClearExpiredSubscriptions nulls out every lapsed window and returns the
	// number of rows touched. Used by the background sweeper.
	ClearExpiredSubscriptions(ctx context.Context) (int64, error)
	CountByTier(ctx context.Context) (TierCounts, error)
	// ListPaginated retrieves users ordered by creation time descending.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.User, error)
	CountUsers(ctx context.Context) (int64, error)
}
