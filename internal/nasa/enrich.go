package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// enrichImages resolves a display href for every search item that carries
// a primary data record; items without one are dropped. All secondary
// fetches for a response run concurrently and the whole enrichment fails
// on the first failure, discarding any sibling successes. Output order
// follows input order minus dropped items.
func enrichImages(ctx context.Context, fetcher Fetcher, items []searchItem) ([]EnrichedImage, error) {
	resolved := make([]*EnrichedImage, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		if len(item.Data) == 0 {
			continue
		}

		i, item := i, item
		g.Go(func() error {
			href, err := fetchImageMedia(gctx, fetcher, item.Href)
			if err != nil {
				return err
			}

			img := item.Data[0]
			img.Href = href
			resolved[i] = &img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := []EnrichedImage{}
	for _, img := range resolved {
		if img != nil {
			images = append(images, *img)
		}
	}
	return images, nil
}

// fetchImageMedia fetches the item's collection payload, an ordered array
// of candidate media-reference strings, and selects the first one
// containing "small", percent-encoding spaces. No candidate matching
// resolves to an empty href. Every failure here, transport or payload,
// fails the enclosing collection request.
func fetchImageMedia(ctx context.Context, fetcher Fetcher, href string) (string, error) {
	if href == "" {
		return "", nil
	}

	body, err := fetcher.Get(ctx, UpstreamRequest{URL: href})
	if err != nil {
		return "", wrapMediaError(err)
	}

	var candidates []string
	if err := json.Unmarshal(body, &candidates); err != nil {
		return "", wrapMediaError(err)
	}

	for _, candidate := range candidates {
		if candidate != "" && strings.Contains(candidate, "small") {
			return strings.ReplaceAll(candidate, " ", "%20"), nil
		}
	}
	return "", nil
}

func wrapMediaError(err error) error {
	return &UpstreamError{
		Status: 500,
		Msg:    fmt.Sprintf("Error fetching NASA image media: %v", err),
	}
}
