package entity

import "time"

// ArticleStatus is the moderation state of a submitted article.
// The only legal transitions are pending→approved and pending→declined;
// a decided article never returns to pending.
type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusDeclined ArticleStatus = "declined"
)

// Valid reports whether the status is one of the known values.
func (s ArticleStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDeclined
}

// Article represents a submitted news article.
//
// Publisher is a denormalized publisher name, not a foreign key: the
// per-publisher report joins on publishers.name, and an article may reference
// a name with no matching publisher record.
// AuthorEmail/AuthorName/AuthorPhoto are a snapshot of the author taken at
// submission time.
type Article struct {
	ID            int64
	Title         string
	ImageURL      string
	Publisher     string
	Tags          []string
	Description   string
	AuthorEmail   string
	AuthorName    string
	AuthorPhoto   string
	Status        ArticleStatus
	DeclineReason *string
	IsPremium     bool
	ViewCount     int64
	CreatedAt     time.Time
}
