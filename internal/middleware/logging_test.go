package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/search?origin=STN&budget=150", nil)
	req.Header.Set("X-Request-Id", "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["request_id"] != "req-1" {
		t.Fatalf("expected request_id req-1, got %v", line["request_id"])
	}
	if line["path"] != "/search" {
		t.Fatalf("expected path /search, got %v", line["path"])
	}
	if line["query"] != "origin=STN&budget=150" {
		t.Fatalf("expected query string logged, got %v", line["query"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Fatalf("expected status %d, got %v", http.StatusTeapot, line["status"])
	}
	if _, ok := line["duration_ms"].(float64); !ok {
		t.Fatalf("expected numeric duration_ms, got %T", line["duration_ms"])
	}
}
