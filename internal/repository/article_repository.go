package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleFilters contains the optional filters for the public approved listing.
// All provided filters are combined with AND.
type ArticleFilters struct {
	Search    string   // case-insensitive substring match on title
	Publisher string   // exact publisher name
	Tags      []string // article tag set must be a superset of these
}

// ContentUpdate carries an author-side content edit.
// Nil fields are left unchanged; status and premium flags are never touched here.
type ContentUpdate struct {
	Title       *string
	ImageURL    *string
	Publisher   *string
	Tags        []string
	Description *string
}

// PublisherArticleCount is one row of the per-publisher report: articles
// grouped by publisher name, inner-joined against registered publishers.
type PublisherArticleCount struct {
	PublisherName string
	LogoURL       string
	ArticleCount  int64
}

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	// Get returns (nil, nil) if no article with the ID exists.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	UpdateContent(ctx context.Context, id int64, fields ContentUpdate) error
	// SetStatus moves a pending article to approved or declined. The reason is
	// stored only for declines. Returns entity.ErrConflict via no-rows when the
	// article is not pending anymore.
	SetStatus(ctx context.Context, id int64, status entity.ArticleStatus, reason *string) error
	SetPremium(ctx context.Context, id int64) error
	// IncrementViewCount atomically bumps the view counter by one.
	IncrementViewCount(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, email string) ([]*entity.Article, error)
	// CountByAuthor returns the number of articles the author has submitted,
	// regardless of status. Drives the publishing-eligibility rule.
	CountByAuthor(ctx context.Context, email string) (int64, error)
	ListApproved(ctx context.Context, filters ArticleFilters) ([]*entity.Article, error)
	// ListTrending returns approved articles ordered by view count descending.
	ListTrending(ctx context.Context, limit int) ([]*entity.Article, error)
	ListPremium(ctx context.Context) ([]*entity.Article, error)
	// ListPaginated retrieves all articles (any status) ordered by creation
	// time descending, for the admin dashboard.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	CountArticles(ctx context.Context) (int64, error)
	// CountByPublisher groups articles by publisher name and joins against the
	// publishers table; names with no publisher record drop out.
	CountByPublisher(ctx context.Context) ([]PublisherArticleCount, error)
}
