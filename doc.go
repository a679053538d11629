// Package homeassistant provides a Go client for the Home Assistant REST API.
//
// The REST API specification is documented at
// https://developers.home-assistant.io/docs/api/rest/. The client covers the
// documented endpoint surface: API status, instance configuration, events,
// services, entity states, state history, logbook entries, calendars,
// template rendering, configuration validation, state updates, event firing
// and service calls.
//
// Every call is an independent, stateless request/response round trip. The
// client keeps no shared mutable state between calls, so any number of calls
// may be issued concurrently. Cancellation and timeouts are controlled by the
// context.Context passed to each method.
//
// # State Values
//
// Home Assistant transmits entity states as JSON strings regardless of the
// underlying datatype: a thermostat reports "21.5", a binary sensor "true",
// the sun "above_horizon". The client recovers the semantic type with an
// adaptive decoder (see StateValue and DecodeState): boolean first, then
// integer, then decimal, falling back to the literal string. Decoding is
// total and never fails.
//
// # Example Usage
//
//	client, err := homeassistant.New("http://homeassistant.local:8123", "your-long-lived-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := client.Status(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(status.Message) // "API running."
//
//	state, err := client.EntityState(context.Background(), "sun.sun")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if state.State != nil {
//	    fmt.Println(state.State) // "above_horizon"
//	}
//
// # Custom Configuration
//
// For custom timeouts, TLS settings, observability hooks or an opt-in
// client-side rate limit:
//
//	client, err := homeassistant.NewWithConfig(&homeassistant.ClientConfig{
//	    BaseURL:     "https://hass.example.com",
//	    Token:       "your-long-lived-token",
//	    Timeout:     10 * time.Second,
//	    Diagnostics: true, // decode errors carry the JSON field path
//	})
package homeassistant
