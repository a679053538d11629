package homeassistant_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/StefanBossbaly/home-assistant-rest/internal/testutil"
)

func TestServices(t *testing.T) {
	t.Parallel()

	// The services field is a mapping keyed by service name, not a list.
	const body = `[
		{
			"domain": "homeassistant",
			"services": {
				"turn_on": {
					"name": "Generic turn on",
					"description": "Generic service to turn devices on.",
					"fields": {},
					"target": {"entity": {}}
				},
				"turn_off": {
					"name": "Generic turn off",
					"description": "Generic service to turn devices off.",
					"fields": {}
				}
			}
		},
		{
			"domain": "persistent_notification",
			"services": {
				"create": {
					"name": "Create",
					"fields": {
						"message": {"required": true, "example": "Please check your configuration."}
					}
				}
			}
		}
	]`

	server := testutil.NewMockServer(t, "/api/services", testToken, body, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	domains, err := client.Services(context.Background())
	if err != nil {
		t.Fatalf("Services() error = %v", err)
	}

	if len(domains) != 2 {
		t.Fatalf("len(domains) = %d, want 2", len(domains))
	}

	if domains[0].Domain != "homeassistant" {
		t.Errorf("Domain = %q, want homeassistant", domains[0].Domain)
	}
	if len(domains[0].Services) != 2 {
		t.Fatalf("len(Services) = %d, want 2", len(domains[0].Services))
	}

	turnOn, ok := domains[0].Services["turn_on"]
	if !ok {
		t.Fatal("turn_on service missing")
	}
	if turnOn.Name != "Generic turn on" {
		t.Errorf("Name = %q", turnOn.Name)
	}
	if turnOn.Target == nil {
		t.Error("Target = nil, want populated")
	}
}

func TestCallService(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/services/light/turn_on" {
			t.Errorf("Path = %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"entity_id":"light.kitchen"}` {
			t.Errorf("body = %s", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"entity_id": "light.kitchen",
				"state": "on",
				"attributes": {"brightness": 180},
				"last_changed": "2023-04-25T23:49:34.728941+00:00",
				"last_updated": "2023-04-25T23:49:34.728941+00:00"
			}
		]`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	states, err := client.CallService(context.Background(), "light", "turn_on", map[string]any{
		"entity_id": "light.kitchen",
	})
	if err != nil {
		t.Fatalf("CallService() error = %v", err)
	}

	if len(states) != 1 {
		t.Fatalf("len(states) = %d, want 1", len(states))
	}
	if s, ok := states[0].State.Text(); !ok || s != "on" {
		t.Errorf("State = (%q, %v), want (on, true)", s, ok)
	}
}

func TestCallServiceValidation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://homeassistant.local:8123")

	if _, err := client.CallService(context.Background(), "", "turn_on", nil); err == nil {
		t.Error("CallService with empty domain: error = nil, want error")
	}
	if _, err := client.CallService(context.Background(), "light", "", nil); err == nil {
		t.Error("CallService with empty service: error = nil, want error")
	}
}
