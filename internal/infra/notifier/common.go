package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second
)

// RateLimitError is a 429 from the webhook service.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// ClientError is a non-retryable 4xx from the webhook service.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("webhook rejected request: %d %s", e.StatusCode, e.Message)
}

// ServerError is a retryable 5xx from the webhook service.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("webhook server error: %d", e.StatusCode)
}

// postJSON delivers the payload with retries. 5xx and network errors back off
// and retry; 429 waits out the advertised Retry-After; other 4xx abort.
func postJSON(ctx context.Context, client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	requestID := uuid.NewString()
	logger := slog.With(slog.String("request_id", requestID))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = postOnce(ctx, client, url, body)
		if lastErr == nil {
			return nil
		}

		var clientErr *ClientError
		if errors.As(lastErr, &clientErr) {
			return lastErr
		}

		delay := retryDelay * time.Duration(attempt)
		var rateErr *RateLimitError
		if errors.As(lastErr, &rateErr) && rateErr.RetryAfter > 0 {
			delay = rateErr.RetryAfter
		}

		if attempt == maxAttempts {
			break
		}
		logger.Warn("webhook delivery failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", lastErr.Error()))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("webhook delivery aborted: %w", ctx.Err())
		}
	}
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", maxAttempts, lastErr)
}

func postOnce(ctx context.Context, client *http.Client, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode < 500:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ClientError{StatusCode: resp.StatusCode, Message: string(msg)}
	default:
		return &ServerError{StatusCode: resp.StatusCode}
	}
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return 0
}

// truncate shortens text to maxLen, marking the cut with an ellipsis.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	const suffix = "..."
	if maxLen <= len(suffix) {
		return text[:maxLen]
	}
	return text[:maxLen-len(suffix)] + suffix
}

// headline renders the one-line message body shared by all backends.
func headline(event Event, title, author, publisher string) string {
	switch event {
	case EventSubmitted:
		return fmt.Sprintf("New article pending review: %q by %s (%s)", title, author, publisher)
	case EventApproved:
		return fmt.Sprintf("Article approved: %q by %s (%s)", title, author, publisher)
	case EventDeclined:
		return fmt.Sprintf("Article declined: %q by %s (%s)", title, author, publisher)
	default:
		return fmt.Sprintf("Article update (%s): %q by %s", event, title, author)
	}
}
