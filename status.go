package homeassistant

import "context"

// APIStatusRunning is the message reported by a healthy instance.
const APIStatusRunning = "API running."

// APIStatus is the response of the /api/ endpoint.
type APIStatus struct {
	Message string `json:"message"`
}

// Running reports whether the instance considers its API operational.
func (s *APIStatus) Running() bool {
	return s.Message == APIStatusRunning
}

// Status calls the /api/ endpoint, which reports whether the API is up.
//
// Any message other than "API running." indicates that the API is not
// running or that an error has occurred.
func (c *Client) Status(ctx context.Context) (*APIStatus, error) {
	var status APIStatus
	if err := c.getJSON(ctx, "/api/", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
