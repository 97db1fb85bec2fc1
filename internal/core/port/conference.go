package port

import (
	"context"

	"github.com/openhuddle/huddle/internal/core/domain"
)

// ConferenceGateway is the remote conferencing control plane, reduced to the
// three operations the broker needs. Implementations translate transport
// failures into domain errors.
type ConferenceGateway interface {
	CreateMeeting(ctx context.Context, req domain.CreateMeetingRequest) (domain.Meeting, error)
	CreateAttendee(ctx context.Context, meetingID, externalUserID string) (domain.Attendee, error)
	DeleteMeeting(ctx context.Context, meetingID string) error
}
