// Package docs retrieves GenLayer documentation pages for the fetch_docs
// tool. The network dependency sits behind the Fetcher interface so the
// tool layer stays testable without I/O.
package docs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"glforge/internal/logging"
)

// Fetcher retrieves the text of a documentation page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// topicPaths maps fetchable topics to documentation paths.
var topicPaths = map[string]string{
	"intelligent_contracts": "/developers/intelligent-contracts/introduction",
	"equivalence_principle": "/developers/intelligent-contracts/equivalence-principle",
	"web_access":            "/developers/intelligent-contracts/web-access",
	"deployment":            "/developers/intelligent-contracts/deployment",
	"genlayer_js":           "/developers/decentralized-applications/genlayer-js",
}

// TopicURL resolves a topic tag to its documentation URL under baseURL.
// Unknown topics resolve to the documentation root.
func TopicURL(baseURL, topic string) string {
	if path, ok := topicPaths[topic]; ok {
		return baseURL + path
	}
	return baseURL
}

// maxBodyBytes caps how much of a documentation page is read; anything
// larger is truncated rather than buffered into the tool result.
const maxBodyBytes = 2 << 20

// HTTPFetcher fetches documentation over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves a page body as text.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building docs request: %w", err)
	}

	logging.Docs("fetching %s", url)
	resp, err := f.client.Do(req)
	if err != nil {
		logging.DocsError("fetch failed: %v", err)
		return "", fmt.Errorf("fetching docs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.DocsError("fetch returned status %d for %s", resp.StatusCode, url)
		return "", fmt.Errorf("fetching docs: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading docs body: %w", err)
	}
	return string(body), nil
}
