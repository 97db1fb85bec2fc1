package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/openhuddle/huddle/internal/core/domain"
	"github.com/openhuddle/huddle/internal/core/port"
)

// SessionService correlates caller-chosen meeting titles to remote meetings
// and attendee grants. It owns no state of its own; everything lives in the
// store or behind the gateway.
type SessionService struct {
	store  port.SessionStore
	conf   port.ConferenceGateway
	events port.EventGateway
}

func NewSessionService(store port.SessionStore, conf port.ConferenceGateway, events port.EventGateway) *SessionService {
	return &SessionService{
		store:  store,
		conf:   conf,
		events: events,
	}
}

// Join resolves title to a meeting, creating one on the control plane if this
// is the first join, then mints a fresh attendee for name.
func (s *SessionService) Join(ctx context.Context, title, name, region string) (domain.JoinInfo, error) {
	if title == "" {
		return domain.JoinInfo{}, domain.Validationf("title is required")
	}
	if name == "" {
		return domain.JoinInfo{}, domain.Validationf("name is required")
	}
	if region == "" {
		return domain.JoinInfo{}, domain.Validationf("region is required")
	}

	rec, ok := s.store.Get(ctx, title)
	created := false
	if !ok {
		var err error
		rec, created, err = s.resolveMeeting(ctx, title, region)
		if err != nil {
			return domain.JoinInfo{}, err
		}
	}

	attendee, err := s.conf.CreateAttendee(ctx, rec.Meeting.MeetingID, domain.NewAttendeeExternalID(name))
	if err != nil {
		return domain.JoinInfo{}, err
	}

	ev := domain.NewSessionEvent(domain.EventAttendeeJoined, title, rec.Meeting.MeetingID)
	ev.AttendeeID = attendee.AttendeeID
	s.publish(ctx, ev)

	return domain.JoinInfo{Meeting: rec.Meeting, Attendee: attendee, Created: created}, nil
}

// resolveMeeting creates a remote meeting for title and races it into the
// store. If another join won the insert, the surplus remote meeting is torn
// down and the winner's record adopted.
func (s *SessionService) resolveMeeting(ctx context.Context, title, region string) (domain.MeetingRecord, bool, error) {
	token := domain.NewIdempotencyToken()
	meeting, err := s.conf.CreateMeeting(ctx, domain.CreateMeetingRequest{
		ClientRequestToken: token,
		MediaRegion:        region,
		ExternalMeetingID:  domain.TruncateExternalID(title),
	})
	if err != nil {
		return domain.MeetingRecord{}, false, err
	}

	rec := domain.MeetingRecord{
		Title:     title,
		Meeting:   meeting,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	stored, inserted := s.store.PutIfAbsent(ctx, rec)
	if !inserted {
		log.Info().Str("title", title).Str("meeting_id", meeting.MeetingID).
			Msg("Lost create race, deleting surplus meeting")
		if err := s.conf.DeleteMeeting(ctx, meeting.MeetingID); err != nil {
			log.Error().Err(err).Str("meeting_id", meeting.MeetingID).
				Msg("Failed to delete surplus meeting")
		}
		return stored, false, nil
	}

	s.publish(ctx, domain.NewSessionEvent(domain.EventMeetingCreated, title, meeting.MeetingID))
	return rec, true, nil
}

// End deletes the remote meeting behind title and drops the record, so the
// title can be reused for a fresh meeting.
func (s *SessionService) End(ctx context.Context, title string) error {
	if title == "" {
		return domain.Validationf("title is required")
	}

	rec, ok := s.store.Get(ctx, title)
	if !ok {
		return domain.NotFoundf("no meeting with title %q", title)
	}

	if err := s.conf.DeleteMeeting(ctx, rec.Meeting.MeetingID); err != nil {
		if domain.KindOf(err) != domain.KindNotFound {
			return err
		}
		// Already gone remotely, still drop our record.
		log.Warn().Str("title", title).Str("meeting_id", rec.Meeting.MeetingID).
			Msg("Meeting already gone on control plane")
	}

	s.store.Delete(ctx, title)
	s.publish(ctx, domain.NewSessionEvent(domain.EventMeetingEnded, title, rec.Meeting.MeetingID))
	return nil
}

// Sessions lists the live meeting records, for health and debug surfaces.
func (s *SessionService) Sessions(ctx context.Context) []domain.MeetingRecord {
	return s.store.List(ctx)
}

func (s *SessionService) publish(ctx context.Context, ev domain.SessionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Broadcast(ctx, ev); err != nil {
		log.Error().Err(err).Str("type", string(ev.Type)).Msg("Failed to broadcast event")
	}
}
