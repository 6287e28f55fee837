package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type ArticleRepo struct{ db *sql.DB }

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, title, image_url, publisher, tags, description,
author_email, author_name, author_photo, status, decline_reason, is_premium, view_count, created_at`

// scanArticle scans one article row in articleColumns order.
func scanArticle(scan func(dest ...any) error) (*entity.Article, error) {
	var article entity.Article
	if err := scan(
		&article.ID, &article.Title, &article.ImageURL, &article.Publisher,
		pq.Array(&article.Tags), &article.Description,
		&article.AuthorEmail, &article.AuthorName, &article.AuthorPhoto,
		&article.Status, &article.DeclineReason, &article.IsPremium,
		&article.ViewCount, &article.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) collect(rows *sql.Rows, op string) ([]*entity.Article, error) {
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (title, image_url, publisher, tags, description,
	    author_email, author_name, author_photo, status, is_premium, view_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.ImageURL, article.Publisher, pq.Array(article.Tags),
		article.Description, article.AuthorEmail, article.AuthorName, article.AuthorPhoto,
		article.Status, article.IsPremium, article.ViewCount, article.CreatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) UpdateContent(ctx context.Context, id int64, fields repository.ContentUpdate) error {
	// COALESCE keeps the stored value when the caller passes nil.
	// Status, premium flag and counters are never touched by a content edit.
	const query = `
UPDATE articles SET
       title       = COALESCE($1, title),
       image_url   = COALESCE($2, image_url),
       publisher   = COALESCE($3, publisher),
       tags        = COALESCE($4, tags),
       description = COALESCE($5, description)
WHERE id = $6`
	var tags any
	if fields.Tags != nil {
		tags = pq.Array(fields.Tags)
	}
	res, err := repo.db.ExecContext(ctx, query,
		fields.Title, fields.ImageURL, fields.Publisher, tags, fields.Description, id,
	)
	if err != nil {
		return fmt.Errorf("UpdateContent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateContent: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) SetStatus(ctx context.Context, id int64, status entity.ArticleStatus, reason *string) error {
	// The WHERE guard enforces the one-way transition: a decided article
	// never matches, so approving or declining it affects zero rows.
	const query = `
UPDATE articles SET
       status         = $1,
       decline_reason = $2
WHERE id = $3 AND status = 'pending'`
	res, err := repo.db.ExecContext(ctx, query, status, reason, id)
	if err != nil {
		return fmt.Errorf("SetStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SetStatus: %w", entity.ErrConflict)
	}
	return nil
}

func (repo *ArticleRepo) SetPremium(ctx context.Context, id int64) error {
	const query = `UPDATE articles SET is_premium = TRUE WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("SetPremium: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("SetPremium: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) IncrementViewCount(ctx context.Context, id int64) error {
	const query = `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("IncrementViewCount: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("IncrementViewCount: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, email string) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE author_email = $1
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	return repo.collect(rows, "ListByAuthor")
}

func (repo *ArticleRepo) CountByAuthor(ctx context.Context, email string) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE author_email = $1`
	var count int64
	err := repo.db.QueryRowContext(ctx, query, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountByAuthor: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) ListApproved(ctx context.Context, filters repository.ArticleFilters) ([]*entity.Article, error) {
	conditions := []string{"status = 'approved'"}
	args := make([]any, 0, 3)

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filters.Publisher != "" {
		args = append(args, filters.Publisher)
		conditions = append(conditions, fmt.Sprintf("publisher = $%d", len(args)))
	}
	if len(filters.Tags) > 0 {
		args = append(args, pq.Array(filters.Tags))
		conditions = append(conditions, fmt.Sprintf("tags @> $%d", len(args)))
	}

	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE ` + strings.Join(conditions, " AND ") + `
ORDER BY created_at DESC, id DESC`

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListApproved: %w", err)
	}
	return repo.collect(rows, "ListApproved")
}

func (repo *ArticleRepo) ListTrending(ctx context.Context, limit int) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE status = 'approved'
ORDER BY view_count DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListTrending: %w", err)
	}
	return repo.collect(rows, "ListTrending")
}

func (repo *ArticleRepo) ListPremium(ctx context.Context) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE status = 'approved' AND is_premium = TRUE
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListPremium: %w", err)
	}
	return repo.collect(rows, "ListPremium")
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	return repo.collect(rows, "ListPaginated")
}

func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) CountByPublisher(ctx context.Context) ([]repository.PublisherArticleCount, error) {
	// INNER JOIN drops article groups whose publisher name has no record,
	// matching the report's inner-join semantics.
	const query = `
SELECT p.name, p.logo_url, COUNT(a.id) AS article_count
FROM articles a
INNER JOIN publishers p ON a.publisher = p.name
GROUP BY p.name, p.logo_url
ORDER BY article_count DESC, p.name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByPublisher: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.PublisherArticleCount, 0, 16)
	for rows.Next() {
		var row repository.PublisherArticleCount
		if err := rows.Scan(&row.PublisherName, &row.LogoURL, &row.ArticleCount); err != nil {
			return nil, fmt.Errorf("CountByPublisher: Scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
