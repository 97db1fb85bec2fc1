package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/openhuddle/huddle/internal/core/domain"
)

type createMeetingRequest struct {
	ClientRequestToken string `json:"ClientRequestToken"`
	MediaRegion        string `json:"MediaRegion"`
	ExternalMeetingID  string `json:"ExternalMeetingId"`
}

type meetingEnvelope struct {
	Meeting domain.Meeting `json:"Meeting"`
}

type createAttendeeRequest struct {
	ExternalUserID string `json:"ExternalUserId"`
}

type attendeeEnvelope struct {
	Attendee domain.Attendee `json:"Attendee"`
}

// CreateMeeting provisions a meeting on the control plane.
func (c *Client) CreateMeeting(ctx context.Context, req domain.CreateMeetingRequest) (domain.Meeting, error) {
	payload := createMeetingRequest{
		ClientRequestToken: req.ClientRequestToken,
		MediaRegion:        req.MediaRegion,
		ExternalMeetingID:  req.ExternalMeetingID,
	}

	var resp meetingEnvelope
	if err := c.do(ctx, http.MethodPost, "/meetings", payload, &resp); err != nil {
		return domain.Meeting{}, domain.Upstream("create meeting", err)
	}

	c.logger.Debug().Str("meeting_id", resp.Meeting.MeetingID).
		Str("region", req.MediaRegion).Msg("Created meeting")
	return resp.Meeting, nil
}

// CreateAttendee mints a join grant for an existing meeting.
func (c *Client) CreateAttendee(ctx context.Context, meetingID, externalUserID string) (domain.Attendee, error) {
	payload := createAttendeeRequest{ExternalUserID: externalUserID}

	var resp attendeeEnvelope
	err := c.do(ctx, http.MethodPost, "/meetings/"+url.PathEscape(meetingID)+"/attendees", payload, &resp)
	if err != nil {
		if isRemoteNotFound(err) {
			return domain.Attendee{}, domain.NotFoundf("meeting %s not found on control plane", meetingID)
		}
		return domain.Attendee{}, domain.Upstream("create attendee", err)
	}

	return resp.Attendee, nil
}

// DeleteMeeting tears a meeting down. A remote 404 maps to a domain
// not-found so callers can treat already-gone meetings as ended.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	err := c.do(ctx, http.MethodDelete, "/meetings/"+url.PathEscape(meetingID), nil, nil)
	if err != nil {
		if isRemoteNotFound(err) {
			return domain.NotFoundf("meeting %s not found on control plane", meetingID)
		}
		return domain.Upstream("delete meeting", err)
	}

	c.logger.Debug().Str("meeting_id", meetingID).Msg("Deleted meeting")
	return nil
}

func isRemoteNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
