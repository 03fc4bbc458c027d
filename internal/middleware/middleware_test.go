package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func echoRequestID(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(RequestIDFromContext(r.Context())))
}

func TestRequestIDGenerated(t *testing.T) {
	h := RequestID(http.HandlerFunc(echoRequestID))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	rid := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("expected generated UUID, got %q: %v", rid, err)
	}
	if rec.Body.String() != rid {
		t.Fatalf("context id %q does not match header %q", rec.Body.String(), rid)
	}
}

func TestRequestIDHonored(t *testing.T) {
	h := RequestID(http.HandlerFunc(echoRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
	if rec.Body.String() != "abc-123" {
		t.Fatalf("expected abc-123 in context, got %q", rec.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/getuser/9", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "rid-1" || entry["method"] != "GET" || entry["path"] != "/getuser/9" {
		t.Fatalf("unexpected log entry %v", entry)
	}
	if entry["status"] != float64(http.StatusNotFound) {
		t.Fatalf("expected status 404, got %v", entry["status"])
	}
}

func TestRecovererLogsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := RequestID(RequestLogger(log)(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "rid-panic")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected panic and request log lines, got %q", buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", lines[0], err)
	}
	if entry["message"] != "panic recovered" || entry["panic"] != "boom" || entry["request_id"] != "rid-panic" {
		t.Fatalf("unexpected panic log entry %v", entry)
	}
	if _, ok := entry["stack"]; !ok {
		t.Fatal("panic log entry has no stack")
	}
}
