// Package article provides use cases for the article submission and approval
// workflow: drafting, admin review, premium flagging and the public listings.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrPremiumRequired indicates that the author has exhausted the free
	// publishing allowance and needs a live premium subscription to submit
	// further articles.
	ErrPremiumRequired = errors.New("premium subscription required")

	// ErrAlreadyDecided indicates an approve or decline on an article that has
	// already left the pending state. Decisions are one-way.
	ErrAlreadyDecided = errors.New("article already decided")

	// ErrNotAuthor indicates that the caller does not own the article it is
	// trying to modify or delete.
	ErrNotAuthor = errors.New("not the article author")

	// ErrAuthorNotFound indicates that the submitting account does not exist.
	ErrAuthorNotFound = errors.New("author not found")
)
