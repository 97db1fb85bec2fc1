package memory

import (
	"context"
	"sync"

	"github.com/openhuddle/huddle/internal/core/domain"
)

// SessionStore is a process-local implementation of port.SessionStore.
// Records live until End or process exit.
type SessionStore struct {
	mu      sync.RWMutex
	records map[string]domain.MeetingRecord
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		records: make(map[string]domain.MeetingRecord),
	}
}

func (s *SessionStore) Get(_ context.Context, title string) (domain.MeetingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[title]
	return rec, ok
}

func (s *SessionStore) PutIfAbsent(_ context.Context, rec domain.MeetingRecord) (domain.MeetingRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.records[rec.Title]; ok {
		return existing, false
	}
	s.records[rec.Title] = rec
	return rec, true
}

func (s *SessionStore) Delete(_ context.Context, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, title)
}

func (s *SessionStore) List(_ context.Context) []domain.MeetingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MeetingRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}
