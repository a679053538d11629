package homeassistant

import (
	"context"

	"github.com/cockroachdb/errors"
)

// RenderTemplate calls the /api/template endpoint, which renders a Home
// Assistant template and returns the result as plain text.
//
// Example:
//
//	out, err := client.RenderTemplate(ctx, "It is {{ now() }}!")
//
// A malformed template is reported by the instance as a 400 response and
// surfaces as an *APIError.
func (c *Client) RenderTemplate(ctx context.Context, template string) (string, error) {
	if template == "" {
		return "", errors.New("homeassistant: template cannot be empty")
	}

	body := struct {
		Template string `json:"template"`
	}{Template: template}

	return c.postText(ctx, "/api/template", body)
}
