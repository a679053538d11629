package homeassistant_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	homeassistant "github.com/StefanBossbaly/home-assistant-rest"
	"github.com/StefanBossbaly/home-assistant-rest/internal/testutil"
)

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/template" {
			t.Errorf("Path = %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"template":"The sun is {{ states(\"sun.sun\") }}."}` {
			t.Errorf("body = %s", body)
		}

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("The sun is below_horizon."))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	out, err := client.RenderTemplate(context.Background(), `The sun is {{ states("sun.sun") }}.`)
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}

	if out != "The sun is below_horizon." {
		t.Errorf("out = %q", out)
	}
}

func TestRenderTemplateMalformed(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Error rendering template: TemplateSyntaxError: unexpected '}'"}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.RenderTemplate(context.Background(), "{{ broken }")
	if err == nil {
		t.Fatal("RenderTemplate() error = nil, want *APIError")
	}

	var apiErr *homeassistant.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message == "" {
		t.Error("Message is empty, want upstream template error")
	}
}

func TestRenderTemplateEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://homeassistant.local:8123")

	_, err := client.RenderTemplate(context.Background(), "")
	if err == nil {
		t.Fatal("RenderTemplate(\"\") error = nil, want error")
	}
}
