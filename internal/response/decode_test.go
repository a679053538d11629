package response_test

import (
	"strings"
	"testing"

	"github.com/StefanBossbaly/home-assistant-rest/internal/response"
)

type configPayload struct {
	Version   string  `json:"version"`
	Elevation int     `json:"elevation"`
	Latitude  float64 `json:"latitude"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	var cfg configPayload

	data := []byte(`{"version":"2023.5.2","elevation":0,"latitude":52.31}`)
	if err := response.Decode(data, &cfg); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if cfg.Version != "2023.5.2" {
		t.Errorf("Version = %s, want 2023.5.2", cfg.Version)
	}
	if cfg.Latitude != 52.31 {
		t.Errorf("Latitude = %v, want 52.31", cfg.Latitude)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	t.Parallel()

	var cfg configPayload

	err := response.Decode([]byte(`{"version":`), &cfg)
	if err == nil {
		t.Fatal("Decode() error = nil, want syntax error")
	}
}

func TestDecodeWithPathReportsField(t *testing.T) {
	t.Parallel()

	var cfg configPayload

	// elevation is a string here, the target field is an int.
	err := response.DecodeWithPath([]byte(`{"version":"2023.5.2","elevation":"high"}`), &cfg)
	if err == nil {
		t.Fatal("DecodeWithPath() error = nil, want type error")
	}

	if !strings.Contains(err.Error(), "elevation") {
		t.Errorf("error = %q, want it to name the elevation field", err.Error())
	}
	if !strings.Contains(err.Error(), "offset") {
		t.Errorf("error = %q, want it to include the byte offset", err.Error())
	}
}

func TestDecodeWithPathReportsSyntaxOffset(t *testing.T) {
	t.Parallel()

	var cfg configPayload

	err := response.DecodeWithPath([]byte(`{"version": oops}`), &cfg)
	if err == nil {
		t.Fatal("DecodeWithPath() error = nil, want syntax error")
	}

	if !strings.Contains(err.Error(), "offset") {
		t.Errorf("error = %q, want it to include the byte offset", err.Error())
	}
}

func TestDecodeWithPathValidInput(t *testing.T) {
	t.Parallel()

	var cfg configPayload

	data := []byte(`{"version":"2023.5.2","elevation":10,"latitude":52.31}`)
	if err := response.DecodeWithPath(data, &cfg); err != nil {
		t.Fatalf("DecodeWithPath() error = %v", err)
	}

	if cfg.Elevation != 10 {
		t.Errorf("Elevation = %d, want 10", cfg.Elevation)
	}
}
