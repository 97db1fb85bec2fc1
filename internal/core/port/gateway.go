package port

import (
	"context"

	"github.com/openhuddle/huddle/internal/core/domain"
)

// EventGateway fans session lifecycle events out to live subscribers.
// Broadcast must not block request handling.
type EventGateway interface {
	Broadcast(ctx context.Context, ev domain.SessionEvent) error
}
