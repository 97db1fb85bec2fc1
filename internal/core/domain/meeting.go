package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExternalIDMaxLen is the longest external identifier the control plane accepts.
const ExternalIDMaxLen = 64

// MediaPlacement carries the media endpoints assigned by the control plane.
// The broker never interprets these; they are handed straight to the client.
type MediaPlacement struct {
	AudioHostURL      string `json:"AudioHostUrl,omitempty"`
	ScreenDataURL     string `json:"ScreenDataUrl,omitempty"`
	ScreenSharingURL  string `json:"ScreenSharingUrl,omitempty"`
	ScreenViewingURL  string `json:"ScreenViewingUrl,omitempty"`
	SignalingURL      string `json:"SignalingUrl,omitempty"`
	TurnControlURL    string `json:"TurnControlUrl,omitempty"`
	EventIngestionURL string `json:"EventIngestionUrl,omitempty"`
}

// Meeting is the descriptor returned by the control plane for a live meeting.
type Meeting struct {
	MeetingID         string         `json:"MeetingId"`
	ExternalMeetingID string         `json:"ExternalMeetingId,omitempty"`
	MediaRegion       string         `json:"MediaRegion,omitempty"`
	MediaPlacement    MediaPlacement `json:"MediaPlacement"`
}

// Attendee is a single join grant for a meeting. Never stored server-side;
// each join mints a fresh one.
type Attendee struct {
	AttendeeID     string `json:"AttendeeId"`
	ExternalUserID string `json:"ExternalUserId,omitempty"`
	JoinToken      string `json:"JoinToken,omitempty"`
}

// JoinInfo is the payload returned to a caller who joined a meeting.
type JoinInfo struct {
	Meeting  Meeting  `json:"Meeting"`
	Attendee Attendee `json:"Attendee"`

	// Created reports whether this join created the remote meeting.
	Created bool `json:"-"`
}

// MeetingRecord is the broker's bookkeeping for one live meeting,
// keyed by the caller-supplied title.
type MeetingRecord struct {
	Title     string
	Meeting   Meeting
	Token     string
	CreatedAt time.Time
}

// CreateMeetingRequest is the input to a control-plane meeting creation.
type CreateMeetingRequest struct {
	ClientRequestToken string
	MediaRegion        string
	ExternalMeetingID  string
}

// NewIdempotencyToken mints a token guarding CreateMeeting against
// duplicate creation on request retry.
func NewIdempotencyToken() string {
	return uuid.NewString()
}

// TruncateExternalID clips s to the control plane's identifier limit.
func TruncateExternalID(s string) string {
	if len(s) > ExternalIDMaxLen {
		return s[:ExternalIDMaxLen]
	}
	return s
}

// NewAttendeeExternalID derives an external user identifier from a display
// name: an 8-char random prefix keeps repeat joins with the same name
// distinct. Collisions are accepted, not mitigated.
func NewAttendeeExternalID(name string) string {
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return TruncateExternalID(prefix + "#" + name)
}
