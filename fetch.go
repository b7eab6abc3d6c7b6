package webhost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchError reports a retrieval whose response was not successful.
type FetchError struct {
	// Status is the response status code.
	Status int

	// StatusText is the response status line text.
	StatusText string

	// Locator is the resource locator the fetch was issued for.
	Locator string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("webhost: fetch %q failed: %d %s", e.Locator, e.Status, e.StatusText)
}

// FetchAsset retrieves the raw bytes behind a resource locator: a single
// best-effort attempt with no retry and no caching. A non-2xx response
// fails with a *FetchError carrying the status. The context cancels an
// in-flight fetch.
//
// On js/wasm builds net/http rides the browser's fetch API, so this is
// the same network path the page itself uses.
func (h *Host) FetchAsset(ctx context.Context, locator string) ([]byte, error) {
	if !h.initialized {
		return nil, ErrNotInitialized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("webhost: fetch %q: %w", locator, err)
	}

	client := h.opts.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhost: fetch %q: %w", locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Locator:    locator,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webhost: fetch %q: read body: %w", locator, err)
	}
	return body, nil
}

// statusText extracts the status line text, falling back to the standard
// phrase when the transport supplies only the code.
func statusText(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
