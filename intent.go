package homeassistant

import (
	"context"

	"github.com/cockroachdb/errors"
)

// IntentParams describes an intent to hand to the instance.
type IntentParams struct {
	// Name is the intent name, e.g. "HassTurnOn".
	Name string

	// Data carries the intent's slot values.
	Data map[string]any
}

// HandleIntent calls the /api/intent/handle endpoint, which dispatches an
// intent to the intent subsystem. The response is returned verbatim; its
// shape depends on the intent handler. The intent integration must be
// enabled in the instance configuration.
func (c *Client) HandleIntent(ctx context.Context, params IntentParams) (string, error) {
	if params.Name == "" {
		return "", errors.New("homeassistant: intent name cannot be empty")
	}

	body := struct {
		Name string         `json:"name"`
		Data map[string]any `json:"data,omitempty"`
	}{
		Name: params.Name,
		Data: params.Data,
	}

	return c.postText(ctx, "/api/intent/handle", body)
}
