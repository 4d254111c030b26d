// Package google implements the calendar source against the Google Calendar API.
package google

import (
	"context"
	"net/http"
	"time"

	"agenda/config"
	"agenda/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const primaryCalendarID = "primary"

// CalendarSource reads the user's primary calendar through the Google
// Calendar API. Tokens are per user, so the API service is built per call
// from the caller's access token.
type CalendarSource struct {
	timeout time.Duration
}

// NewCalendarSource creates a Google Calendar source.
func NewCalendarSource(cfg *config.Config) service.CalendarSource {
	return &CalendarSource{
		timeout: cfg.Sync.ProviderTimeout,
	}
}

// ListEvents fetches events of the primary calendar inside the window,
// expanded to single instances and ordered by start time ascending. Every
// call is bounded by the configured provider timeout.
func (s *CalendarSource) ListEvents(ctx context.Context, accessToken string, window service.ListWindow) ([]service.RawEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar service")
	}

	call := svc.Events.List(primaryCalendarID).
		Context(ctx).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime")

	if !window.TimeMin.IsZero() {
		call = call.TimeMin(window.TimeMin.Format(time.RFC3339))
	}
	if !window.TimeMax.IsZero() {
		call = call.TimeMax(window.TimeMax.Format(time.RFC3339))
	}
	if window.MaxResults > 0 {
		call = call.MaxResults(int64(window.MaxResults))
	}

	events, err := call.Do()
	if err != nil {
		return nil, translateError(err)
	}

	raw := make([]service.RawEvent, 0, len(events.Items))
	for _, item := range events.Items {
		raw = append(raw, toRawEvent(item))
	}

	return raw, nil
}

// translateError maps Google API failures onto domain sentinels. A rejected
// token surfaces as a credential expiry so the caller can attempt a refresh.
func translateError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return service.ErrCredentialExpired
	}

	return errors.Wrap(err, "failed to list calendar events")
}

// toRawEvent converts one Google Calendar event to the provider-agnostic form.
func toRawEvent(item *calendar.Event) service.RawEvent {
	raw := service.RawEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Start:       toEventTime(item.Start),
		End:         toEventTime(item.End),
	}

	for _, a := range item.Attendees {
		raw.Attendees = append(raw.Attendees, service.RawAttendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
			Organizer:      a.Organizer,
		})
	}

	return raw
}

// toEventTime parses one event boundary. Timed events carry an RFC 3339
// dateTime; all-day events carry a plain date.
func toEventTime(t *calendar.EventDateTime) service.EventTime {
	var out service.EventTime
	if t == nil {
		return out
	}

	if t.DateTime != "" {
		if parsed, err := time.Parse(time.RFC3339, t.DateTime); err == nil {
			out.DateTime = &parsed
		}
	}
	if t.Date != "" {
		if parsed, err := time.Parse("2006-01-02", t.Date); err == nil {
			out.Date = &parsed
		}
	}

	return out
}
