package homeassistant

import "context"

// API defines the interface for Home Assistant REST operations. It enables
// consumers to substitute mock implementations in tests.
//
// All methods mirror the corresponding methods on Client.
type API interface {
	// Status reports whether the REST API is up.
	Status(ctx context.Context) (*APIStatus, error)

	// GetConfig returns the instance configuration.
	GetConfig(ctx context.Context) (*Config, error)

	// CheckConfig triggers a validation of the configuration files.
	CheckConfig(ctx context.Context) (*CheckConfig, error)

	// Events returns the known event types and their listener counts.
	Events(ctx context.Context) ([]Event, error)

	// FireEvent fires an event with an optional payload.
	FireEvent(ctx context.Context, eventType string, data map[string]any) (string, error)

	// Services returns the callable services grouped by domain.
	Services(ctx context.Context) ([]ServiceDomain, error)

	// CallService invokes a service and returns the states it changed.
	CallService(ctx context.Context, domain, service string, data map[string]any) ([]State, error)

	// States returns the state of every tracked entity.
	States(ctx context.Context) ([]State, error)

	// EntityState returns the state of a single entity.
	EntityState(ctx context.Context, entityID string) (*State, error)

	// SetState updates or creates an entity state.
	SetState(ctx context.Context, params StateParams) (*State, error)

	// History returns past state changes grouped per entity.
	History(ctx context.Context, params HistoryParams) ([][]HistoryEntry, error)

	// Logbook returns the logbook entries for a period.
	Logbook(ctx context.Context, params LogbookParams) ([]LogbookEntry, error)

	// Calendars returns the calendar entities known to the instance.
	Calendars(ctx context.Context) ([]Calendar, error)

	// CalendarEvents returns the events of one calendar within a period.
	CalendarEvents(ctx context.Context, params CalendarEventsParams) ([]CalendarEvent, error)

	// RenderTemplate renders a template to plain text.
	RenderTemplate(ctx context.Context, template string) (string, error)

	// ErrorLog returns the session error log as plain text.
	ErrorLog(ctx context.Context) (string, error)

	// CameraImage returns the most recent frame of a camera entity.
	CameraImage(ctx context.Context, entityID string) ([]byte, error)

	// HandleIntent dispatches an intent to the intent subsystem.
	HandleIntent(ctx context.Context, params IntentParams) (string, error)
}

// Compile-time check that Client implements the API interface.
var _ API = (*Client)(nil)
