package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger_EmitsRequestEvent(t *testing.T) {
	var buf bytes.Buffer
	h := Logger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	h.ServeHTTP(httptest.NewRecorder(), req)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("log line: %v (%s)", err, buf.String())
	}
	if ev["message"] != "http_request" || ev["status"].(float64) != 418 || ev["bytes"].(float64) != 2 || ev["remote"] != "10.0.0.1" {
		t.Fatalf("event = %v", ev)
	}
	if ev["route"] != "unmatched" {
		t.Fatalf("route = %v", ev["route"])
	}
}

func TestClientHost(t *testing.T) {
	if got := clientHost("1.2.3.4"); got != "1.2.3.4" {
		t.Fatalf("got %q", got)
	}
	if got := clientHost("[::1]:80"); got != "::1" {
		t.Fatalf("got %q", got)
	}
}
