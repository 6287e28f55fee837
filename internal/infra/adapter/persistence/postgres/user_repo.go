package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

const userColumns = `id, email, name, photo_url, role, premium_end_at, phone, address, birth_date, gender, created_at`

// scanUser scans one user row in userColumns order.
func scanUser(scan func(dest ...any) error) (*entity.User, error) {
	var user entity.User
	if err := scan(
		&user.ID, &user.Email, &user.Name, &user.PhotoURL, &user.Role,
		&user.PremiumEndAt, &user.Phone, &user.Address, &user.BirthDate,
		&user.Gender, &user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1`
	user, err := scanUser(repo.db.QueryRowContext(ctx, query, email).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return user, nil
}

func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var existsFlag bool
	err := repo.db.QueryRowContext(ctx, query, email).Scan(&existsFlag)
	if err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return existsFlag, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users
	   (email, name, photo_url, role, premium_end_at, phone, address, birth_date, gender, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PhotoURL, user.Role, user.PremiumEndAt,
		user.Phone, user.Address, user.BirthDate, user.Gender, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) UpdateProfile(ctx context.Context, email string, fields repository.ProfileUpdate) error {
	// COALESCE keeps the stored value when the caller passes nil.
	const query = `
UPDATE users SET
       name       = COALESCE($1, name),
       photo_url  = COALESCE($2, photo_url),
       phone      = COALESCE($3, phone),
       address    = COALESCE($4, address),
       birth_date = COALESCE($5, birth_date),
       gender     = COALESCE($6, gender)
WHERE email = $7`
	res, err := repo.db.ExecContext(ctx, query,
		fields.Name, fields.PhotoURL, fields.Phone,
		fields.Address, fields.BirthDate, fields.Gender, email,
	)
	if err != nil {
		return fmt.Errorf("UpdateProfile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateProfile: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *UserRepo) GrantAdminRole(ctx context.Context, id int64) error {
	const query = `UPDATE users SET role = 'admin' WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("GrantAdminRole: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("GrantAdminRole: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *UserRepo) SetSubscriptionEnd(ctx context.Context, email string, endAt time.Time) error {
	const query = `UPDATE users SET premium_end_at = $1 WHERE email = $2`
	res, err := repo.db.ExecContext(ctx, query, endAt, email)
	if err != nil {
		return fmt.Errorf("SetSubscriptionEnd: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SetSubscriptionEnd: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *UserRepo) ClearSubscription(ctx context.Context, email string) error {
	const query = `UPDATE users SET premium_end_at = NULL WHERE email = $1`
	res, err := repo.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("ClearSubscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ClearSubscription: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *UserRepo) ClearExpiredSubscriptions(ctx context.Context) (int64, error) {
	const query = `UPDATE users SET premium_end_at = NULL WHERE premium_end_at IS NOT NULL AND premium_end_at <= now()`
	res, err := repo.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("ClearExpiredSubscriptions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ClearExpiredSubscriptions: RowsAffected: %w", err)
	}
	return n, nil
}

func (repo *UserRepo) CountByTier(ctx context.Context) (repository.TierCounts, error) {
	const query = `
SELECT COUNT(*) AS all_users,
       COUNT(*) FILTER (WHERE premium_end_at IS NOT NULL AND premium_end_at > now()) AS premium_users
FROM users`
	var counts repository.TierCounts
	err := repo.db.QueryRowContext(ctx, query).Scan(&counts.All, &counts.Premium)
	if err != nil {
		return repository.TierCounts{}, fmt.Errorf("CountByTier: %w", err)
	}
	counts.Normal = counts.All - counts.Premium
	return counts, nil
}

func (repo *UserRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	query := `
SELECT ` + userColumns + `
FROM users
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (repo *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return count, nil
}
