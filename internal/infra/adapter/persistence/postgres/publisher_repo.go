package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type PublisherRepo struct{ db *sql.DB }

func NewPublisherRepo(db *sql.DB) repository.PublisherRepository {
	return &PublisherRepo{db: db}
}

func (repo *PublisherRepo) Create(ctx context.Context, publisher *entity.Publisher) error {
	const query = `
INSERT INTO publishers (name, logo_url, created_at)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		publisher.Name, publisher.LogoURL, publisher.CreatedAt,
	).Scan(&publisher.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PublisherRepo) List(ctx context.Context) ([]*entity.Publisher, error) {
	const query = `
SELECT id, name, logo_url, created_at
FROM publishers
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	publishers := make([]*entity.Publisher, 0, 16)
	for rows.Next() {
		var publisher entity.Publisher
		if err := rows.Scan(&publisher.ID, &publisher.Name, &publisher.LogoURL, &publisher.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		publishers = append(publishers, &publisher)
	}
	return publishers, rows.Err()
}
