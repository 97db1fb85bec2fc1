package port

import "github.com/openhuddle/huddle/internal/core/domain"

// Client is one connected event subscriber.
type Client interface {
	ID() string
	Send(ev domain.SessionEvent) error
	Close() error
}
