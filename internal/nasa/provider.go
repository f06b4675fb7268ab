package nasa

import (
	"context"
	"time"
)

// UpstreamRequest describes one outbound GET to the feed provider.
// Timeout is the per-call budget; zero means no budget beyond the caller's
// context. The budget is deliberately per-call configuration: not every
// endpoint applies one.
type UpstreamRequest struct {
	URL     string
	Timeout time.Duration
}

// Fetcher abstracts the single-request upstream HTTP client. A non-success
// upstream status surfaces as *UpstreamError and an expired budget as
// *UpstreamTimeoutError.
type Fetcher interface {
	Get(ctx context.Context, req UpstreamRequest) ([]byte, error)
}
