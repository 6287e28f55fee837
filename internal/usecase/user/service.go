package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// RegisterInput represents the input parameters for creating a new account.
type RegisterInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// ProfileInput carries a partial profile update.
// Fields with nil values will not be updated.
type ProfileInput struct {
	Name      *string
	PhotoURL  *string
	Phone     *string
	Address   *string
	BirthDate *string
	Gender    *string
}

// Service provides account management use cases.
// It handles business logic for user operations and delegates persistence to the repository.
type Service struct {
	Repo repository.UserRepository
}

// PaginatedResult represents the result of a paginated user query.
type PaginatedResult struct {
	Data       []*entity.User
	Pagination pagination.Metadata
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func validateRegisterInput(in RegisterInput) error {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return err
	}
	if in.Name == "" {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.PhotoURL != "" {
		if err := entity.ValidateURL(in.PhotoURL); err != nil {
			return err
		}
	}
	return nil
}

// Register creates a new account with the normal role.
// Returns ErrDuplicateUser if the email is already registered. The existence
// check races with concurrent registrations; the unique index on email closes
// the gap and the constraint violation maps to the same error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	usr := &entity.User{
		Email:     in.Email,
		Name:      in.Name,
		PhotoURL:  in.PhotoURL,
		Role:      entity.RoleNormal,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return usr, nil
}

// RegisterIfAbsent backs Google sign-in: it returns the existing account for
// the email, or creates one when none exists. The boolean reports whether a
// new account was created.
func (s *Service) RegisterIfAbsent(ctx context.Context, in RegisterInput) (*entity.User, bool, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, false, err
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, false, fmt.Errorf("get user: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	usr := &entity.User{
		Email:     in.Email,
		Name:      in.Name,
		PhotoURL:  in.PhotoURL,
		Role:      entity.RoleNormal,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		// lost the race against a concurrent first sign-in
		if isUniqueViolation(err) {
			existing, gerr := s.Repo.GetByEmail(ctx, in.Email)
			if gerr != nil || existing == nil {
				return nil, false, fmt.Errorf("get user after conflict: %w", err)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return usr, true, nil
}

// Get retrieves an account by email.
// Returns ErrUserNotFound if no account exists.
func (s *Service) Get(ctx context.Context, email string) (*entity.User, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// Exists reports whether an account with the email is registered.
func (s *Service) Exists(ctx context.Context, email string) (bool, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies a partial profile update to the account.
// Returns ErrUserNotFound if no account exists.
func (s *Service) UpdateProfile(ctx context.Context, email string, in ProfileInput) error {
	if in.PhotoURL != nil && *in.PhotoURL != "" {
		if err := entity.ValidateURL(*in.PhotoURL); err != nil {
			return err
		}
	}
	if in.Name != nil && *in.Name == "" {
		return &entity.ValidationError{Field: "name", Message: "cannot be empty"}
	}

	err := s.Repo.UpdateProfile(ctx, email, repository.ProfileUpdate{
		Name:      in.Name,
		PhotoURL:  in.PhotoURL,
		Phone:     in.Phone,
		Address:   in.Address,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
	})
	if errors.Is(err, entity.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// PromoteToAdmin grants the admin role to the account with the given ID.
// Returns ErrInvalidUserID if the ID is not positive and ErrUserNotFound if
// no account exists.
func (s *Service) PromoteToAdmin(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	err := s.Repo.GrantAdminRole(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("grant admin role: %w", err)
	}
	return nil
}

// Subscribe opens a premium window for the account ending after the given
// duration. Returns ErrUserNotFound if no account exists.
func (s *Service) Subscribe(ctx context.Context, email string, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, &entity.ValidationError{Field: "time", Message: "must be positive"}
	}
	endAt := time.Now().Add(d)
	err := s.Repo.SetSubscriptionEnd(ctx, email, endAt)
	if errors.Is(err, entity.ErrNotFound) {
		return time.Time{}, ErrUserNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("set subscription end: %w", err)
	}
	return endAt, nil
}

// Unsubscribe clears the premium window for the account.
// Returns ErrUserNotFound if no account exists.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	err := s.Repo.ClearSubscription(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("clear subscription: %w", err)
	}
	return nil
}

// IsSubscribed reports whether the account holds a live premium window.
// Unknown accounts are reported as not subscribed.
func (s *Service) IsSubscribed(ctx context.Context, email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if usr == nil {
		return false, nil
	}
	return usr.IsSubscribed(time.Now()), nil
}

// IsAdmin reports whether the account holds the admin role.
// Unknown accounts are reported as non-admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if usr == nil {
		return false, nil
	}
	return usr.Role == entity.RoleAdmin, nil
}

// CountByTier returns the account counts per subscription tier.
func (s *Service) CountByTier(ctx context.Context) (repository.TierCounts, error) {
	counts, err := s.Repo.CountByTier(ctx)
	if err != nil {
		return repository.TierCounts{}, fmt.Errorf("count users by tier: %w", err)
	}
	return counts, nil
}

// ListPaginated retrieves accounts with pagination support.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := s.Repo.ListPaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users paginated: %w", err)
	}

	return &PaginatedResult{
		Data: users,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// SweepExpired clears premium windows that have already ended and returns the
// number of accounts affected. The worker runs it on a schedule so expiry
// holds server-side even when clients never call the unsubscribe route.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.Repo.ClearExpiredSubscriptions(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear expired subscriptions: %w", err)
	}
	return n, nil
}
