package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
)

// discordMaxDescription is the embed description limit.
const discordMaxDescription = 4096

// DiscordNotifier posts moderation messages to a Discord webhook.
type DiscordNotifier struct {
	config      Config
	client      *http.Client
	rateLimiter *RateLimiter
}

// NewDiscordNotifier returns a notifier paced under Discord's 30 requests/
// minute webhook limit.
func NewDiscordNotifier(config Config) *DiscordNotifier {
	return &DiscordNotifier{
		config:      config,
		client:      &http.Client{Timeout: config.Timeout},
		rateLimiter: NewRateLimiter(0.5, 2),
	}
}

type discordPayload struct {
	Content string         `json:"content"`
	Embeds  []discordEmbed `json:"embeds,omitempty"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Footer      *discordEmbedFooter `json:"footer,omitempty"`
}

type discordEmbedFooter struct {
	Text string `json:"text"`
}

// Notify sends the moderation event to the configured channel.
func (d *DiscordNotifier) Notify(ctx context.Context, event Event, article *entity.Article) error {
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("discord rate limiter: %w", err)
	}
	return postJSON(ctx, d.client, d.config.WebhookURL, d.buildPayload(event, article))
}

func (d *DiscordNotifier) buildPayload(event Event, article *entity.Article) discordPayload {
	return discordPayload{
		Content: headline(event, article.Title, article.AuthorName, article.Publisher),
		Embeds: []discordEmbed{{
			Title:       truncate(article.Title, 256),
			Description: truncate(article.Description, discordMaxDescription),
			Timestamp:   article.CreatedAt.Format(time.RFC3339),
			Footer:      &discordEmbedFooter{Text: article.Publisher + " • " + article.AuthorEmail},
		}},
	}
}
