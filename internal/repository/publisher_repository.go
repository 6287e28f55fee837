package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type PublisherRepository interface {
	Create(ctx context.Context, publisher *entity.Publisher) error
	List(ctx context.Context) ([]*entity.Publisher, error)
}
