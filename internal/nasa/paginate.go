package nasa

import "math"

const (
	defaultPage = 1
	defaultSize = 10
)

// PageRequest carries the raw caller-supplied pagination inputs. A nil
// field means the caller omitted the value or sent something unparseable.
type PageRequest struct {
	Page *int
	Size *int
}

// PageMeta is the positional metadata of one page. Page and Size echo the
// raw caller inputs, not the defaulted values used for slicing, so an
// absent input serializes as null.
type PageMeta struct {
	Page       *int `json:"page"`
	Size       *int `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	Start      int  `json:"start"`
	End        int  `json:"end"`
}

// Page is one slice of an ordered sequence plus its metadata. StartIndex
// is the zero-based offset the slice was cut at; call sites that compute
// their End differently need it alongside Meta.
type Page[T any] struct {
	Meta       PageMeta
	Items      []T
	StartIndex int
}

// Paginate cuts the requested 1-based page out of items. Non-positive or
// absent page/size default to 1 and 10 for the arithmetic. The start index
// is not clamped to the page count: a page past the end yields an empty
// slice with Start 0. Meta.End is the page-length formula
// (startIndex + slice length); see the image pipeline for the divergent
// total-length variant.
func Paginate[T any](items []T, req PageRequest) Page[T] {
	page := defaultPage
	if req.Page != nil && *req.Page > 0 {
		page = *req.Page
	}
	size := defaultSize
	if req.Size != nil && *req.Size > 0 {
		size = *req.Size
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	// Saturate instead of overflowing: a page large enough to wrap the
	// multiplication is still just a page past the end.
	startIndex := math.MaxInt
	if page-1 <= math.MaxInt/size {
		startIndex = (page - 1) * size
	}

	sliced := []T{}
	if startIndex < total {
		end := startIndex + size
		if end > total {
			end = total
		}
		sliced = items[startIndex:end]
	}

	start := 0
	if len(sliced) > 0 {
		start = startIndex + 1
	}

	return Page[T]{
		Meta: PageMeta{
			Page:       req.Page,
			Size:       req.Size,
			Total:      total,
			TotalPages: totalPages,
			Start:      start,
			End:        startIndex + len(sliced),
		},
		Items:      sliced,
		StartIndex: startIndex,
	}
}
