package homeassistant

import "context"

// ErrorLog calls the /api/error_log endpoint, which returns every error
// logged during the current session as one plaintext blob.
func (c *Client) ErrorLog(ctx context.Context) (string, error) {
	return c.getText(ctx, "/api/error_log")
}
