// Package middleware provides http.RoundTripper middleware for the client:
// bearer authentication, request observability, an opt-in rate limiter and
// TLS overrides.
package middleware

import (
	"maps"
	"net/http"
)

// BearerAuth returns a middleware that adds the Home Assistant long-lived
// access token as a bearer Authorization header to every request.
func BearerAuth(token string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authTransport{
			next:  next,
			value: "Bearer " + token,
		}
	}
}

type authTransport struct {
	next  http.RoundTripper
	value string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying the original.
	req = cloneRequest(req)
	req.Header.Set("Authorization", t.value)

	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
