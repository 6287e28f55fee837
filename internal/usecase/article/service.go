package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/notifier"
	"newsdesk/internal/repository"
)

// TrendingLimit is the number of articles the trending listing returns.
const TrendingLimit = 6

// SubmitInput represents the input parameters for submitting a new article.
type SubmitInput struct {
	AuthorEmail string
	Title       string
	ImageURL    string
	Publisher   string
	Tags        []string
	Description string
}

// UpdateInput represents an author-side content edit.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          int64
	Title       *string
	ImageURL    *string
	Publisher   *string
	Tags        []string
	Description *string
}

// Service provides article workflow use cases. The user repository backs the
// publishing-eligibility rule and the author snapshot taken at submission.
type Service struct {
	Repo  repository.ArticleRepository
	Users repository.UserRepository

	// Notifier announces new submissions to the review channel. Optional;
	// delivery is best-effort and never fails the submission.
	Notifier notifier.Notifier
}

// PaginatedResult represents the result of a paginated article query.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// Submit creates a pending article for the author. A non-subscribed author
// may hold at most one article; further submissions return ErrPremiumRequired
// until a premium window is live. New articles start pending, non-premium,
// with zero views.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Publisher == "" {
		return nil, &entity.ValidationError{Field: "publisher", Message: "is required"}
	}
	if in.ImageURL != "" {
		if err := entity.ValidateURL(in.ImageURL); err != nil {
			return nil, err
		}
	}

	author, err := s.Users.GetByEmail(ctx, in.AuthorEmail)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	if !author.IsSubscribed(time.Now()) {
		count, err := s.Repo.CountByAuthor(ctx, in.AuthorEmail)
		if err != nil {
			return nil, fmt.Errorf("count author articles: %w", err)
		}
		if count >= 1 {
			return nil, ErrPremiumRequired
		}
	}

	art := &entity.Article{
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		Publisher:   in.Publisher,
		Tags:        in.Tags,
		Description: in.Description,
		AuthorEmail: author.Email,
		AuthorName:  author.Name,
		AuthorPhoto: author.PhotoURL,
		Status:      entity.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if s.Notifier != nil {
		go s.announce(notifier.EventSubmitted, *art)
	}
	return art, nil
}

// announce delivers a moderation notification off the request path. The
// article is passed by value so the caller's copy cannot race with retries.
func (s *Service) announce(event notifier.Event, art entity.Article) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.Notifier.Notify(ctx, event, &art); err != nil {
		slog.Warn("moderation notification failed",
			slog.Int64("article_id", art.ID),
			slog.String("event", string(event)),
			slog.String("error", err.Error()))
	}
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Update applies a content edit on behalf of the author. Only the author may
// edit; status, premium flag and view count are untouched.
func (s *Service) Update(ctx context.Context, callerEmail string, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidArticleID
	}
	if in.Title != nil && *in.Title == "" {
		return &entity.ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		if err := entity.ValidateURL(*in.ImageURL); err != nil {
			return err
		}
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if art.AuthorEmail != callerEmail {
		return ErrNotAuthor
	}

	err = s.Repo.UpdateContent(ctx, in.ID, repository.ContentUpdate{
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		Publisher:   in.Publisher,
		Tags:        in.Tags,
		Description: in.Description,
	})
	if errors.Is(err, entity.ErrNotFound) {
		return ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article on behalf of the author.
func (s *Service) Delete(ctx context.Context, callerEmail string, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if art.AuthorEmail != callerEmail {
		return ErrNotAuthor
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Approve moves a pending article to approved.
// Returns ErrAlreadyDecided when the article has left the pending state and
// ErrArticleNotFound when it does not exist.
func (s *Service) Approve(ctx context.Context, id int64) error {
	return s.decide(ctx, id, entity.StatusApproved, nil)
}

// Decline moves a pending article to declined, recording the reason.
func (s *Service) Decline(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return &entity.ValidationError{Field: "reason", Message: "is required"}
	}
	return s.decide(ctx, id, entity.StatusDeclined, &reason)
}

func (s *Service) decide(ctx context.Context, id int64, status entity.ArticleStatus, reason *string) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	err := s.Repo.SetStatus(ctx, id, status, reason)
	if errors.Is(err, entity.ErrConflict) {
		// the guarded update matched no row: either decided already or absent
		art, gerr := s.Repo.Get(ctx, id)
		if gerr != nil {
			return fmt.Errorf("get article: %w", gerr)
		}
		if art == nil {
			return ErrArticleNotFound
		}
		return ErrAlreadyDecided
	}
	if err != nil {
		return fmt.Errorf("set article status: %w", err)
	}
	return nil
}

// MarkPremium flags an article as premium. The flag is one-directional.
func (s *Service) MarkPremium(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	err := s.Repo.SetPremium(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("set article premium: %w", err)
	}
	return nil
}

// RecordView bumps the view counter by one. The increment happens in SQL, so
// concurrent views never lose updates.
func (s *Service) RecordView(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	err := s.Repo.IncrementViewCount(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// ListByAuthor retrieves the author's own articles, any status.
func (s *Service) ListByAuthor(ctx context.Context, email string) ([]*entity.Article, error) {
	articles, err := s.Repo.ListByAuthor(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// ListApproved retrieves the public catalogue with optional filters.
func (s *Service) ListApproved(ctx context.Context, filters repository.ArticleFilters) ([]*entity.Article, error) {
	articles, err := s.Repo.ListApproved(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list approved articles: %w", err)
	}
	return articles, nil
}

// ListTrending retrieves the most viewed approved articles.
func (s *Service) ListTrending(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListTrending(ctx, TrendingLimit)
	if err != nil {
		return nil, fmt.Errorf("list trending articles: %w", err)
	}
	return articles, nil
}

// ListPremium retrieves approved premium articles.
func (s *Service) ListPremium(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListPremium(ctx)
	if err != nil {
		return nil, fmt.Errorf("list premium articles: %w", err)
	}
	return articles, nil
}

// ListPaginated retrieves all articles for the admin dashboard.
func (s *Service) ListPaginated(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListPaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles paginated: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// CountByPublisher returns the per-publisher article report.
func (s *Service) CountByPublisher(ctx context.Context) ([]repository.PublisherArticleCount, error) {
	counts, err := s.Repo.CountByPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles by publisher: %w", err)
	}
	return counts, nil
}
