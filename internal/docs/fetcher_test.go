package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTopicURL(t *testing.T) {
	base := "https://docs.genlayer.com"
	if got := TopicURL(base, "web_access"); got != base+"/developers/intelligent-contracts/web-access" {
		t.Errorf("TopicURL(web_access) = %q", got)
	}
	// Unknown topics resolve to the root.
	if got := TopicURL(base, "nope"); got != base {
		t.Errorf("TopicURL(unknown) = %q, want base", got)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("GenLayer documentation body"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)

	body, err := f.Fetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(body, "GenLayer documentation body") {
		t.Errorf("unexpected body %q", body)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("non-200 responses should fail")
	}
}

// Oversized pages are truncated to the read cap instead of buffered whole.
func TestHTTPFetcherCapsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("x", 64*1024)
		for written := 0; written < maxBodyBytes+1<<20; written += len(chunk) {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(10 * time.Second)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(body) != maxBodyBytes {
		t.Errorf("body length = %d, want cap %d", len(body), maxBodyBytes)
	}
}
