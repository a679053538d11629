package homeassistant

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// HistoryParams narrows a /api/history/period query.
// The zero value requests the default period (the past day) for all entities.
type HistoryParams struct {
	// FilterEntityIDs restricts the result to the given entities.
	FilterEntityIDs []string

	// StartTime is the beginning of the period. Zero means the instance
	// default (one day before the time of the request).
	StartTime time.Time

	// EndTime is the end of the period. Zero means now.
	EndTime time.Time

	// MinimalResponse omits attributes and last_updated from all but the
	// first and last entry of each entity.
	MinimalResponse bool

	// NoAttributes skips attributes entirely.
	NoAttributes bool

	// SignificantChangesOnly returns only significant state changes.
	SignificantChangesOnly bool
}

func (p HistoryParams) endpoint() (string, url.Values) {
	endpoint := "/api/history/period"
	if !p.StartTime.IsZero() {
		endpoint += "/" + p.StartTime.Format(time.RFC3339Nano)
	}

	query := url.Values{}
	if len(p.FilterEntityIDs) > 0 {
		query.Set("filter_entity_ids", strings.Join(p.FilterEntityIDs, ","))
	}
	if !p.EndTime.IsZero() {
		query.Set("end_time", p.EndTime.Format(time.RFC3339Nano))
	}
	if p.MinimalResponse {
		query.Set("minimal_response", "true")
	}
	if p.NoAttributes {
		query.Set("no_attributes", "true")
	}
	if p.SignificantChangesOnly {
		query.Set("significant_changes_only", "true")
	}

	return endpoint, query
}

// HistoryEntry is one recorded state change. Fields other than the state are
// optional: with MinimalResponse set, entries between the first and last one
// carry only the state and the changed timestamp.
type HistoryEntry struct {
	EntityID    string         `json:"entity_id,omitempty"`
	State       *StateValue    `json:"state,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	LastChanged *time.Time     `json:"last_changed,omitempty"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}

// History calls the /api/history/period/<timestamp> endpoint, which returns
// past state changes grouped per entity: one inner slice per entity,
// ordered by time.
func (c *Client) History(ctx context.Context, params HistoryParams) ([][]HistoryEntry, error) {
	endpoint, query := params.endpoint()

	var entries [][]HistoryEntry
	if err := c.getJSON(ctx, endpoint, query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
