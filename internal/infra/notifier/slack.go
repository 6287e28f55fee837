package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
)

// slackMaxSectionText is the Block Kit section text limit.
const slackMaxSectionText = 3000

// SlackNotifier posts moderation messages to a Slack incoming webhook.
type SlackNotifier struct {
	config      Config
	client      *http.Client
	rateLimiter *RateLimiter
}

// NewSlackNotifier returns a notifier paced to Slack's 1 message/second
// webhook limit.
func NewSlackNotifier(config Config) *SlackNotifier {
	return &SlackNotifier{
		config:      config,
		client:      &http.Client{Timeout: config.Timeout},
		rateLimiter: NewRateLimiter(1.0, 1),
	}
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Notify sends the moderation event to the configured channel.
func (s *SlackNotifier) Notify(ctx context.Context, event Event, article *entity.Article) error {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("slack rate limiter: %w", err)
	}
	return postJSON(ctx, s.client, s.config.WebhookURL, s.buildPayload(event, article))
}

func (s *SlackNotifier) buildPayload(event Event, article *entity.Article) slackPayload {
	text := headline(event, article.Title, article.AuthorName, article.Publisher)

	section := fmt.Sprintf("*%s*\n\n%s", article.Title,
		truncate(article.Description, slackMaxSectionText))
	meta := fmt.Sprintf("%s • %s • %s",
		article.Publisher, article.AuthorEmail, article.CreatedAt.Format(time.RFC3339))

	return slackPayload{
		Text: truncate(text, 150),
		Blocks: []slackBlock{
			{Type: "section", Text: &slackText{Type: "mrkdwn", Text: section}},
			{Type: "context", Elements: []slackText{{Type: "mrkdwn", Text: meta}}},
		},
	}
}
