package homeassistant

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
)

// Calendar is one calendar entity known to the instance.
type Calendar struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
}

// CalendarDate is the start or end of a calendar event. Timed events carry a
// full timestamp; all-day events carry only a date.
type CalendarDate struct {
	// Time is the instant of a timed event, or midnight of the date for
	// an all-day event.
	Time time.Time

	// AllDay is true when the wire value was a whole date.
	AllDay bool
}

const calendarDateLayout = "2006-01-02"

// UnmarshalJSON implements json.Unmarshaler for the
// {"dateTime": ...} / {"date": ...} union the calendar API uses.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var raw struct {
		DateTime *string `json:"dateTime"`
		Date     *string `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "invalid calendar date")
	}

	switch {
	case raw.DateTime != nil:
		t, err := time.Parse(time.RFC3339, *raw.DateTime)
		if err != nil {
			return errors.Wrapf(err, "invalid calendar dateTime %q", *raw.DateTime)
		}
		*d = CalendarDate{Time: t}
		return nil

	case raw.Date != nil:
		t, err := time.Parse(calendarDateLayout, *raw.Date)
		if err != nil {
			return errors.Wrapf(err, "invalid calendar date %q", *raw.Date)
		}
		*d = CalendarDate{Time: t, AllDay: true}
		return nil

	default:
		return errors.New("calendar date has neither dateTime nor date")
	}
}

// MarshalJSON implements json.Marshaler, re-emitting the wire union.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.AllDay {
		return json.Marshal(map[string]string{"date": d.Time.Format(calendarDateLayout)})
	}
	return json.Marshal(map[string]string{"dateTime": d.Time.Format(time.RFC3339)})
}

// CalendarEvent is one event from a calendar entity.
type CalendarEvent struct {
	Summary      string       `json:"summary"`
	Start        CalendarDate `json:"start"`
	End          CalendarDate `json:"end"`
	Location     *string      `json:"location,omitempty"`
	Description  *string      `json:"description,omitempty"`
	UID          *string      `json:"uid,omitempty"`
	RecurrenceID *string      `json:"recurrence_id,omitempty"`
	RRule        *string      `json:"rrule,omitempty"`
}

// CalendarEventsParams selects a calendar entity and the period to list.
type CalendarEventsParams struct {
	// EntityID is the calendar entity, e.g. "calendar.holidays".
	EntityID string

	// Start and End bound the listed events. Both are required by the
	// upstream API.
	Start time.Time
	End   time.Time
}

// calendarTimeLayout matches the millisecond-precision RFC 3339 form the
// calendar API expects for its start/end query parameters.
const calendarTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Calendars calls the /api/calendars endpoint, which returns the calendar
// entities known to the instance.
func (c *Client) Calendars(ctx context.Context) ([]Calendar, error) {
	var calendars []Calendar
	if err := c.getJSON(ctx, "/api/calendars", nil, &calendars); err != nil {
		return nil, err
	}
	return calendars, nil
}

// CalendarEvents calls the /api/calendars/<entity_id> endpoint, which
// returns the events of one calendar within the requested period.
func (c *Client) CalendarEvents(ctx context.Context, params CalendarEventsParams) ([]CalendarEvent, error) {
	if params.EntityID == "" {
		return nil, ErrEmptyEntityID
	}

	query := url.Values{}
	query.Set("start", params.Start.Format(calendarTimeLayout))
	query.Set("end", params.End.Format(calendarTimeLayout))

	var events []CalendarEvent
	endpoint := "/api/calendars/" + url.PathEscape(params.EntityID)
	if err := c.getJSON(ctx, endpoint, query, &events); err != nil {
		return nil, err
	}
	return events, nil
}
