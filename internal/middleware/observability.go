package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/StefanBossbaly/home-assistant-rest/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	// Record metrics with a normalized path to avoid unbounded cardinality.
	t.metrics.RecordHTTPRequest(req.Method, normalizePath(req.URL.Path), resp.StatusCode, duration)

	return resp, nil
}

var (
	// entityIDPattern matches domain-qualified entity ids in paths,
	// e.g. /api/states/sun.sun or /api/camera_proxy/camera.front_door.
	entityIDPattern = regexp.MustCompile(`/[a-z_]+\.[A-Za-z0-9_]+(/|$)`)

	// timestampPattern matches RFC 3339 timestamps used as path segments
	// by the history and logbook endpoints.
	timestampPattern = regexp.MustCompile(`/\d{4}-\d{2}-\d{2}T[0-9:.]+(?:Z|[+-]\d{2}:\d{2})(/|$)`)

	// servicePattern matches the domain/service tail of service calls.
	servicePattern = regexp.MustCompile(`^/api/services/[a-z_]+/[a-z_]+$`)

	// normalizedPathCache caches normalized paths to avoid repeated regex
	// work. A running client hits a small, stable set of endpoints, so the
	// cache stays bounded in practice.
	normalizedPathCache sync.Map
)

// normalizePath replaces dynamic path segments (entity ids, timestamps,
// service names) with placeholders to prevent unbounded cardinality in
// metrics backends.
//
// Examples:
//   - /api/states/sun.sun                     → /api/states/:entity_id
//   - /api/history/period/2023-04-25T23:49:34+00:00 → /api/history/period/:timestamp
//   - /api/services/light/turn_on             → /api/services/:domain/:service
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		return cached.(string)
	}

	normalized := path
	if servicePattern.MatchString(normalized) {
		normalized = "/api/services/:domain/:service"
	} else {
		normalized = entityIDPattern.ReplaceAllString(normalized, "/:entity_id$1")
		normalized = timestampPattern.ReplaceAllString(normalized, "/:timestamp$1")
	}

	normalizedPathCache.Store(path, normalized)

	return normalized
}
