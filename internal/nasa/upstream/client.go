// Package upstream holds the single-request HTTP client used for all calls
// to the NASA feed provider.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nholik/nasa-data-aggregation/internal/nasa"
)

// Client issues single GET requests and normalizes failures into the
// domain error taxonomy. It holds no per-request state and never retries.
type Client struct {
	httpClient *http.Client
}

var errNoHTTPClient = errors.New("http client not configured")

// New creates a Client around the shared outbound http.Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Get issues the request and returns the raw response body on success.
// A non-2xx status becomes an UpstreamError carrying the upstream status
// and body text; exceeding the per-call budget becomes an UpstreamTimeoutError.
func (c *Client) Get(ctx context.Context, req nasa.UpstreamRequest) ([]byte, error) {
	if c.httpClient == nil {
		return nil, errNoHTTPClient
	}

	budgeted := req.Timeout > 0

	cancel := func() {}
	if budgeted {
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if budgeted && isBudgetExceeded(ctx, err) {
			return nil, &nasa.UpstreamTimeoutError{Endpoint: req.URL}
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if budgeted && isBudgetExceeded(ctx, err) {
			return nil, &nasa.UpstreamTimeoutError{Endpoint: req.URL}
		}
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &nasa.UpstreamError{
			Status: resp.StatusCode,
			Msg:    fmt.Sprintf("NASA error: %s", string(body)),
		}
	}

	return body, nil
}

// isBudgetExceeded reports whether err was caused by a deadline expiring
// rather than by a transport failure. Callers must additionally know that
// a per-call budget was configured: a parent-context deadline on an
// unbudgeted call is the caller's timeout, not the upstream's.
func isBudgetExceeded(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}
