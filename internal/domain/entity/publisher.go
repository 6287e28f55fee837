package entity

import "time"

// Publisher represents a news outlet whose name articles reference.
// Name is the de facto join key for the per-publisher article report.
type Publisher struct {
	ID        int64
	Name      string
	LogoURL   string
	CreatedAt time.Time
}
