package notifier

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// NoopNotifier discards every notification. Used when no webhook is
// configured so callers never need a nil check.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Notify(context.Context, Event, *entity.Article) error { return nil }
