// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// SourceHost is a raw-content host serving template documents.
type SourceHost struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// Requests returns the request paths seen so far, in order.
func (h *SourceHost) Requests() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.requests...)
}

// NewSourceHost starts a host that answers any request whose path ends with
// one of the documents' keys (e.g. "/main/template/config.schema.json") with
// that document, and 404 otherwise. It is closed when the test ends.
func NewSourceHost(t *testing.T, documents map[string]string) *SourceHost {
	t.Helper()

	host := &SourceHost{}
	host.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host.mu.Lock()
		host.requests = append(host.requests, r.URL.Path)
		host.mu.Unlock()

		for suffix, body := range documents {
			if strings.HasSuffix(r.URL.Path, suffix) {
				_, _ = w.Write([]byte(body))
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(host.Close)

	return host
}
