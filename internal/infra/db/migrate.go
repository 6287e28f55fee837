package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/publishers.sql
var seedPublishersSQL string

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id             SERIAL PRIMARY KEY,
    email          TEXT NOT NULL,
    name           TEXT NOT NULL,
    photo_url      TEXT NOT NULL DEFAULT '',
    role           VARCHAR(10) NOT NULL DEFAULT 'normal',
    premium_end_at TIMESTAMPTZ,
    phone          TEXT,
    address        TEXT,
    birth_date     TEXT,
    gender         TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT chk_users_role CHECK (role IN ('normal', 'admin'))
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id             SERIAL PRIMARY KEY,
    title          TEXT NOT NULL,
    image_url      TEXT NOT NULL DEFAULT '',
    publisher      TEXT NOT NULL,
    tags           TEXT[] NOT NULL DEFAULT '{}',
    description    TEXT NOT NULL DEFAULT '',
    author_email   TEXT NOT NULL,
    author_name    TEXT NOT NULL,
    author_photo   TEXT NOT NULL DEFAULT '',
    status         VARCHAR(10) NOT NULL DEFAULT 'pending',
    decline_reason TEXT,
    is_premium     BOOLEAN NOT NULL DEFAULT FALSE,
    view_count     BIGINT NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT chk_articles_status CHECK (status IN ('pending', 'approved', 'declined'))
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS publishers (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    logo_url   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// duplicate-registration guard, also serves the login lookup
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		// subscription sweeps scan only rows with a live window
		`CREATE INDEX IF NOT EXISTS idx_users_premium_end_at ON users(premium_end_at) WHERE premium_end_at IS NOT NULL`,
		// trending sort
		`CREATE INDEX IF NOT EXISTS idx_articles_view_count ON articles(view_count DESC)`,
		// per-author listings and the eligibility count
		`CREATE INDEX IF NOT EXISTS idx_articles_author_email ON articles(author_email)`,
		// public catalogue filters
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_publisher ON articles(publisher)`,
		// tag superset filter (tags @> ...)
		`CREATE INDEX IF NOT EXISTS idx_articles_tags_gin ON articles USING gin(tags)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE title search; skipped silently when the
	// extension cannot be installed.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`)

	if _, err := db.Exec(seedPublishersSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown removes the schema in reverse order of creation.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS publishers CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
