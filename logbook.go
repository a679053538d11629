package homeassistant

import (
	"context"
	"net/url"
	"time"
)

// LogbookParams narrows a /api/logbook query.
// The zero value requests the default period (the past day) for all entities.
type LogbookParams struct {
	// Entity restricts the result to a single entity.
	Entity string

	// StartTime is the beginning of the period. Zero means the instance
	// default (one day before the time of the request).
	StartTime time.Time

	// EndTime is the end of the period. Zero means now.
	EndTime time.Time
}

func (p LogbookParams) endpoint() (string, url.Values) {
	endpoint := "/api/logbook"
	if !p.StartTime.IsZero() {
		endpoint += "/" + p.StartTime.Format(time.RFC3339Nano)
	}

	query := url.Values{}
	if p.Entity != "" {
		query.Set("entity", p.Entity)
	}
	if !p.EndTime.IsZero() {
		query.Set("end_time", p.EndTime.Format(time.RFC3339Nano))
	}

	return endpoint, query
}

// LogbookEntry is one logbook line. Which fields are present depends on the
// kind of event that produced the entry, so all of them are optional.
type LogbookEntry struct {
	Domain   string     `json:"domain,omitempty"`
	EntityID string     `json:"entity_id,omitempty"`
	Message  string     `json:"message,omitempty"`
	Name     string     `json:"name,omitempty"`
	When     *time.Time `json:"when,omitempty"`
}

// Logbook calls the /api/logbook/<timestamp> endpoint, which returns the
// logbook entries for the requested period.
func (c *Client) Logbook(ctx context.Context, params LogbookParams) ([]LogbookEntry, error) {
	endpoint, query := params.endpoint()

	var entries []LogbookEntry
	if err := c.getJSON(ctx, endpoint, query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
