// Package publisher provides use cases for the publisher directory.
package publisher

import (
	"context"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for registering a publisher.
type CreateInput struct {
	Name    string
	LogoURL string
}

// Service provides publisher directory use cases.
type Service struct {
	Repo repository.PublisherRepository
}

// Create registers a new publisher.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Publisher, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.LogoURL != "" {
		if err := entity.ValidateURL(in.LogoURL); err != nil {
			return nil, err
		}
	}

	pub := &entity.Publisher{
		Name:      in.Name,
		LogoURL:   in.LogoURL,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, pub); err != nil {
		return nil, fmt.Errorf("create publisher: %w", err)
	}
	return pub, nil
}

// List retrieves all publishers.
func (s *Service) List(ctx context.Context) ([]*entity.Publisher, error) {
	publishers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return publishers, nil
}

// Seed registers every publisher not already present, matching by name.
// Existing publishers are left untouched. Returns the number created.
func (s *Service) Seed(ctx context.Context, seeds []CreateInput) (int, error) {
	existing, err := s.Repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed publishers: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, pub := range existing {
		known[pub.Name] = struct{}{}
	}

	created := 0
	for _, in := range seeds {
		if _, ok := known[in.Name]; ok {
			continue
		}
		if _, err := s.Create(ctx, in); err != nil {
			return created, fmt.Errorf("seed publisher %q: %w", in.Name, err)
		}
		created++
	}
	return created, nil
}
