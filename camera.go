package homeassistant

import (
	"context"
	"net/url"
)

// CameraImage calls the /api/camera_proxy/<entity_id> endpoint, which
// returns the most recent frame of a camera entity as raw image bytes.
func (c *Client) CameraImage(ctx context.Context, entityID string) ([]byte, error) {
	if entityID == "" {
		return nil, ErrEmptyEntityID
	}
	return c.getBytes(ctx, "/api/camera_proxy/"+url.PathEscape(entityID))
}
