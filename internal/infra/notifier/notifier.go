// Package notifier delivers moderation notifications over chat webhooks.
// When an author submits an article the newsroom channel gets a message so
// reviewers see the pending queue grow without polling the admin UI.
//
// Implementations handle rate limiting and retries internally; callers treat
// delivery as best-effort and never fail the originating request on error.
package notifier

import (
	"context"
	"os"
	"time"

	"newsdesk/internal/domain/entity"
)

// Event names the moderation transition being announced.
type Event string

const (
	EventSubmitted Event = "submitted"
	EventApproved  Event = "approved"
	EventDeclined  Event = "declined"
)

// Notifier sends a moderation notification for an article.
type Notifier interface {
	Notify(ctx context.Context, event Event, article *entity.Article) error
}

// FromEnv builds the configured notifier. NOTIFIER selects the backend
// (slack, discord, none); the matching *_WEBHOOK_URL must be set. Unset or
// unknown values yield the no-op notifier.
func FromEnv() Notifier {
	timeout := 10 * time.Second
	switch os.Getenv("NOTIFIER") {
	case "slack":
		if url := os.Getenv("SLACK_WEBHOOK_URL"); url != "" {
			return NewSlackNotifier(Config{WebhookURL: url, Timeout: timeout})
		}
	case "discord":
		if url := os.Getenv("DISCORD_WEBHOOK_URL"); url != "" {
			return NewDiscordNotifier(Config{WebhookURL: url, Timeout: timeout})
		}
	}
	return NewNoopNotifier()
}

// Config holds webhook delivery settings shared by all backends.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}
