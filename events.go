package homeassistant

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
)

// Event describes an event type the instance is listening for.
type Event struct {
	Event         string `json:"event"`
	ListenerCount int    `json:"listener_count"`
}

// Events calls the /api/events endpoint, which returns the event types the
// instance knows about and their listener counts.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FireEvent calls the /api/events/<event_type> endpoint, which fires an
// event with the given type and optional payload. It returns the upstream
// confirmation message.
func (c *Client) FireEvent(ctx context.Context, eventType string, data map[string]any) (string, error) {
	if eventType == "" {
		return "", errors.New("homeassistant: event type cannot be empty")
	}

	// A typed nil map would serialize as JSON null; send no body instead.
	var body any
	if data != nil {
		body = data
	}

	var resp struct {
		Message string `json:"message"`
	}
	endpoint := "/api/events/" + url.PathEscape(eventType)
	if err := c.postJSON(ctx, endpoint, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
