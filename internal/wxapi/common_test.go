package wxapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockServer creates a test HTTP server that simulates the Webex API.
// This is shared across all test files in the wxapi package.
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
