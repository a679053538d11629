package homeassistant

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
)

// ServiceDomain groups the services registered under one integration domain,
// e.g. "light" or "climate".
//
// Note: the upstream documentation describes the inner field as a list, but
// the instance actually returns a mapping keyed by service name. The types
// here follow the observed wire format, not the documentation.
type ServiceDomain struct {
	Domain   string             `json:"domain"`
	Services map[string]Service `json:"services"`
}

// Service describes a single callable service.
type Service struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Fields      map[string]any `json:"fields,omitempty"`
	Target      map[string]any `json:"target,omitempty"`
}

// Services calls the /api/services endpoint, which returns the callable
// services grouped by domain.
func (c *Client) Services(ctx context.Context) ([]ServiceDomain, error) {
	var domains []ServiceDomain
	if err := c.getJSON(ctx, "/api/services", nil, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// CallService calls the /api/services/<domain>/<service> endpoint, which
// invokes a service with the given payload. It returns the states that
// changed while the service was executing.
func (c *Client) CallService(ctx context.Context, domain, service string, data map[string]any) ([]State, error) {
	if domain == "" {
		return nil, errors.New("homeassistant: service domain cannot be empty")
	}
	if service == "" {
		return nil, errors.New("homeassistant: service name cannot be empty")
	}

	var body any
	if data != nil {
		body = data
	}

	var states []State
	endpoint := "/api/services/" + url.PathEscape(domain) + "/" + url.PathEscape(service)
	if err := c.postJSON(ctx, endpoint, body, &states); err != nil {
		return nil, err
	}
	return states, nil
}
