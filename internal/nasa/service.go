package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
)

// Endpoints holds the upstream base URLs. They are configuration so tests
// and deployments can point at a substitute provider.
type Endpoints struct {
	APOD      string
	NeoFeed   string
	NeoLookup string
	Images    string
}

// DefaultEndpoints are NASA's public endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		APOD:      "https://api.nasa.gov/planetary/apod",
		NeoFeed:   "https://api.nasa.gov/neo/rest/v1/feed",
		NeoLookup: "https://api.nasa.gov/neo/rest/v1/neo",
		Images:    "https://images-api.nasa.gov",
	}
}

var errAPIKeyMissing = &ServerConfigError{Msg: "NASA API key is not set"}

// Service orchestrates the upstream feeds and the validation, flattening,
// filtering, enrichment, and pagination pipeline. All state is
// request-scoped; nothing is cached across requests.
type Service struct {
	fetcher   Fetcher
	apiKey    string
	endpoints Endpoints

	// requestTimeout is the per-call budget applied to the APOD and feed
	// endpoints. The by-id lookup, image search, and enrichment fetches
	// run without one.
	requestTimeout time.Duration
}

// NewService creates a new Service.
func NewService(fetcher Fetcher, apiKey string, endpoints Endpoints, requestTimeout time.Duration) *Service {
	return &Service{
		fetcher:        fetcher,
		apiKey:         apiKey,
		endpoints:      endpoints,
		requestTimeout: requestTimeout,
	}
}

// Apod fetches the picture-of-the-day, optionally for a specific date, and
// passes the upstream object through unmodified.
func (s *Service) Apod(ctx context.Context, date string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, errAPIKeyMissing
	}
	if date != "" && !datePattern.MatchString(date) {
		return nil, invalidInput("Invalid date format. Use YYYY-MM-DD")
	}

	values := url.Values{}
	values.Set("api_key", s.apiKey)
	if date != "" {
		values.Set("date", date)
	}

	body, err := s.fetcher.Get(ctx, UpstreamRequest{
		URL:     fmt.Sprintf("%s?%s", s.endpoints.APOD, values.Encode()),
		Timeout: s.requestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return passthrough(body)
}

// AsteroidByID fetches a single near-earth object and passes the upstream
// object through unmodified.
func (s *Service) AsteroidByID(ctx context.Context, id string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, errAPIKeyMissing
	}
	if id == "" {
		return nil, invalidInput("Asteroid ID is required")
	}

	values := url.Values{}
	values.Set("api_key", s.apiKey)

	body, err := s.fetcher.Get(ctx, UpstreamRequest{
		URL: fmt.Sprintf("%s/%s?%s", s.endpoints.NeoLookup, url.PathEscape(id), values.Encode()),
	})
	if err != nil {
		return nil, err
	}
	return passthrough(body)
}

// passthrough forwards an upstream body unmodified after checking it is
// actually JSON, so a broken upstream response surfaces as a 500 instead
// of being relayed verbatim.
func passthrough(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errors.New("upstream returned malformed JSON")
	}
	return json.RawMessage(body), nil
}

// FeedQuery holds the caller inputs for the near-earth-object feed.
type FeedQuery struct {
	StartDate string
	EndDate   string
	Q         string
	Page      *int
	Size      *int
}

// FeedMeta extends the page metadata with the upstream pagination links
// and element count the feed response carries.
type FeedMeta struct {
	PageMeta
	NasaLinks    json.RawMessage `json:"nasaLinks"`
	ElementCount int64           `json:"elementCount"`
}

// FeedResponse is the paginated near-earth-object feed.
type FeedResponse struct {
	Meta  FeedMeta      `json:"meta"`
	Items []ApproachRow `json:"items"`
}

// AsteroidFeed runs the full feed pipeline: range validation, one upstream
// fetch, flattening, substring filtering, pagination.
func (s *Service) AsteroidFeed(ctx context.Context, query FeedQuery) (*FeedResponse, error) {
	if s.apiKey == "" {
		return nil, errAPIKeyMissing
	}
	if err := ValidateRange(query.StartDate, query.EndDate); err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("api_key", s.apiKey)
	if query.StartDate != "" {
		values.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		values.Set("end_date", query.EndDate)
	}

	body, err := s.fetcher.Get(ctx, UpstreamRequest{
		URL:     fmt.Sprintf("%s?%s", s.endpoints.NeoFeed, values.Encode()),
		Timeout: s.requestTimeout,
	})
	if err != nil {
		return nil, err
	}

	var payload feedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	rows, err := FlattenFeed(payload.NearEarthObjects)
	if err != nil {
		return nil, err
	}

	filtered := FilterRows(rows, query.Q)
	page := Paginate(filtered, PageRequest{Page: query.Page, Size: query.Size})

	log.Printf("feed: %d objects in range, %d after filter", len(rows), len(filtered))

	return &FeedResponse{
		Meta: FeedMeta{
			PageMeta:     page.Meta,
			NasaLinks:    payload.Links,
			ElementCount: payload.ElementCount,
		},
		Items: page.Items,
	}, nil
}

// ImageQuery holds the caller inputs for the image-library search.
type ImageQuery struct {
	Filter string
	Page   *int
	Size   *int
}

// ImagesResponse is the paginated, enriched image search result.
type ImagesResponse struct {
	Meta      PageMeta        `json:"meta"`
	Paginated []EnrichedImage `json:"paginated"`
}

// SearchImages runs the image pipeline: one search fetch, concurrent
// all-or-nothing enrichment, pagination.
func (s *Service) SearchImages(ctx context.Context, query ImageQuery) (*ImagesResponse, error) {
	if query.Filter == "" {
		return nil, invalidInput("Filter is required")
	}

	values := url.Values{}
	if trimmed := strings.TrimSpace(query.Filter); trimmed != "" {
		values.Set("q", trimmed)
	}

	var payload searchPayload
	body, err := s.fetcher.Get(ctx, UpstreamRequest{
		URL: fmt.Sprintf("%s/search?%s", s.endpoints.Images, values.Encode()),
	})
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	images, err := enrichImages(ctx, s.fetcher, payload.Collection.Items)
	if err != nil {
		return nil, err
	}

	page := Paginate(images, PageRequest{Page: query.Page, Size: query.Size})

	// This call site computes End from the full enriched length, not the
	// page length. The two feeds disagree on purpose; see the paginator.
	meta := page.Meta
	meta.End = page.StartIndex + meta.Total

	return &ImagesResponse{
		Meta:      meta,
		Paginated: page.Items,
	}, nil
}
