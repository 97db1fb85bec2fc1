package port

import (
	"context"

	"github.com/openhuddle/huddle/internal/core/domain"
)

// SessionStore holds the live meeting records, keyed by title.
type SessionStore interface {
	Get(ctx context.Context, title string) (domain.MeetingRecord, bool)

	// PutIfAbsent inserts rec unless a record for the same title already
	// exists. It returns the record that is now stored and whether the
	// insert happened. The compare-and-insert is atomic: concurrent first
	// joins for one title see exactly one winner.
	PutIfAbsent(ctx context.Context, rec domain.MeetingRecord) (domain.MeetingRecord, bool)

	Delete(ctx context.Context, title string)

	List(ctx context.Context) []domain.MeetingRecord
}
