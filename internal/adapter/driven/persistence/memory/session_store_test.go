package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/openhuddle/huddle/internal/core/domain"
)

func record(title, meetingID string) domain.MeetingRecord {
	return domain.MeetingRecord{
		Title:   title,
		Meeting: domain.Meeting{MeetingID: meetingID},
	}
}

func TestPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	stored, inserted := store.PutIfAbsent(ctx, record("standup", "m-1"))
	if !inserted {
		t.Fatal("first insert should win")
	}
	if stored.Meeting.MeetingID != "m-1" {
		t.Errorf("stored meeting = %q, want m-1", stored.Meeting.MeetingID)
	}

	stored, inserted = store.PutIfAbsent(ctx, record("standup", "m-2"))
	if inserted {
		t.Fatal("second insert for same title should lose")
	}
	if stored.Meeting.MeetingID != "m-1" {
		t.Errorf("loser should see the winner's record, got %q", stored.Meeting.MeetingID)
	}
}

func TestGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	if _, ok := store.Get(ctx, "standup"); ok {
		t.Fatal("empty store should miss")
	}

	store.PutIfAbsent(ctx, record("standup", "m-1"))

	rec, ok := store.Get(ctx, "standup")
	if !ok || rec.Meeting.MeetingID != "m-1" {
		t.Fatalf("Get = %+v, %v", rec, ok)
	}

	store.Delete(ctx, "standup")
	if _, ok := store.Get(ctx, "standup"); ok {
		t.Fatal("deleted title should miss")
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	store.PutIfAbsent(ctx, record("a", "m-1"))
	store.PutIfAbsent(ctx, record("b", "m-2"))

	if got := len(store.List(ctx)); got != 2 {
		t.Errorf("List len = %d, want 2", got)
	}
}

func TestConcurrentPutIfAbsentSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	const n = 32
	var wg sync.WaitGroup
	wins := make(chan string, n)

	for i := 0; i < n; i++ {
		meetingID := "m-" + string(rune('a'+i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, inserted := store.PutIfAbsent(ctx, record("standup", meetingID)); inserted {
				wins <- meetingID
			}
		}()
	}
	wg.Wait()
	close(wins)

	var winners []string
	for id := range wins {
		winners = append(winners, id)
	}
	if len(winners) != 1 {
		t.Fatalf("want exactly one winner, got %d", len(winners))
	}

	rec, ok := store.Get(ctx, "standup")
	if !ok || rec.Meeting.MeetingID != winners[0] {
		t.Errorf("stored record %+v does not match winner %s", rec, winners[0])
	}
}
