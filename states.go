package homeassistant

import (
	"context"
	"net/url"
	"time"
)

// Context identifies the origin of a state change.
type Context struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id"`
	UserID   *string `json:"user_id"`
}

// State is one entity's reported status.
//
// A State is constructed fresh on every decode of a response payload and is
// not mutated afterwards; the caller that requested it owns it exclusively.
type State struct {
	// EntityID is the domain-qualified entity id, e.g. "sun.sun".
	EntityID string `json:"entity_id"`

	// State is the adaptively decoded state value, or nil when the
	// instance reported null.
	State *StateValue `json:"state"`

	// Attributes carries the entity's attribute map as raw JSON values.
	Attributes map[string]any `json:"attributes"`

	LastChanged time.Time `json:"last_changed"`
	LastUpdated time.Time `json:"last_updated"`

	// Context is present on single-entity reads and writes.
	Context *Context `json:"context,omitempty"`
}

// StateParams describes a state update or creation.
type StateParams struct {
	// EntityID is the entity to update; an unknown id creates a new one.
	EntityID string

	// State is the new state, transmitted as a string per the wire format.
	State string

	// Attributes optionally replaces the entity's attributes.
	Attributes map[string]string
}

// States calls the /api/states endpoint, which returns the state of every
// entity the instance tracks.
func (c *Client) States(ctx context.Context) ([]State, error) {
	var states []State
	if err := c.getJSON(ctx, "/api/states", nil, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// EntityState calls the /api/states/<entity_id> endpoint, which returns the
// state of a single entity.
func (c *Client) EntityState(ctx context.Context, entityID string) (*State, error) {
	if entityID == "" {
		return nil, ErrEmptyEntityID
	}

	var state State
	endpoint := "/api/states/" + url.PathEscape(entityID)
	if err := c.getJSON(ctx, endpoint, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SetState calls the /api/states/<entity_id> endpoint, which updates the
// state of an entity or creates it when the id is unknown. Both outcomes
// succeed (200 for an update, 201 for a creation) and return the resulting
// state.
//
// SetState talks to Home Assistant's state machine only; it does not make
// the underlying device do anything. Use CallService for that.
func (c *Client) SetState(ctx context.Context, params StateParams) (*State, error) {
	if params.EntityID == "" {
		return nil, ErrEmptyEntityID
	}

	attributes := params.Attributes
	if attributes == nil {
		attributes = map[string]string{}
	}

	body := struct {
		State      string            `json:"state"`
		Attributes map[string]string `json:"attributes"`
	}{
		State:      params.State,
		Attributes: attributes,
	}

	var state State
	endpoint := "/api/states/" + url.PathEscape(params.EntityID)
	if err := c.postJSON(ctx, endpoint, body, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
