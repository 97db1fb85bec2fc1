package domain

import "time"

type SessionEventType string

const (
	EventMeetingCreated SessionEventType = "meeting_created"
	EventAttendeeJoined SessionEventType = "attendee_joined"
	EventMeetingEnded   SessionEventType = "meeting_ended"
)

// SessionEvent is a lifecycle notification fanned out to live subscribers.
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	Title      string           `json:"title"`
	MeetingID  string           `json:"meeting_id,omitempty"`
	AttendeeID string           `json:"attendee_id,omitempty"`
	At         time.Time        `json:"at"`
}

func NewSessionEvent(t SessionEventType, title, meetingID string) SessionEvent {
	return SessionEvent{
		Type:      t,
		Title:     title,
		MeetingID: meetingID,
		At:        time.Now().UTC(),
	}
}
