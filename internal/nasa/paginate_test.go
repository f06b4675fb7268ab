package nasa

import (
	"math"
	"testing"
)

func intPtr(n int) *int { return &n }

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateLastPartialPage(t *testing.T) {
	page := Paginate(sequence(25), PageRequest{Page: intPtr(3), Size: intPtr(10)})

	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(page.Items))
	}
	if page.Items[0] != 21 || page.Items[4] != 25 {
		t.Fatalf("expected items 21..25, got %v", page.Items)
	}
	if page.Meta.Start != 21 {
		t.Fatalf("expected start 21, got %d", page.Meta.Start)
	}
	if page.Meta.End != 25 {
		t.Fatalf("expected end 25, got %d", page.Meta.End)
	}
	if page.Meta.Total != 25 || page.Meta.TotalPages != 3 {
		t.Fatalf("expected total 25 over 3 pages, got %d/%d", page.Meta.Total, page.Meta.TotalPages)
	}
}

func TestPaginateDefaults(t *testing.T) {
	// Absent page defaults to 1; zero size defaults to 10.
	page := Paginate(sequence(25), PageRequest{Size: intPtr(0)})

	if len(page.Items) != 10 {
		t.Fatalf("expected default size 10, got %d items", len(page.Items))
	}
	if page.Items[0] != 1 {
		t.Fatalf("expected default page 1, got first item %d", page.Items[0])
	}
	if page.Meta.Page != nil {
		t.Fatalf("expected raw absent page echoed as nil, got %v", *page.Meta.Page)
	}
	if page.Meta.Size == nil || *page.Meta.Size != 0 {
		t.Fatalf("expected raw size 0 echoed, got %v", page.Meta.Size)
	}
}

func TestPaginateNegativeInputsDefault(t *testing.T) {
	page := Paginate(sequence(5), PageRequest{Page: intPtr(-2), Size: intPtr(-1)})

	if len(page.Items) != 5 {
		t.Fatalf("expected all 5 items on defaulted first page, got %d", len(page.Items))
	}
	if page.Meta.Page == nil || *page.Meta.Page != -2 {
		t.Fatalf("expected raw page -2 echoed, got %v", page.Meta.Page)
	}
}

func TestPaginatePastTheEnd(t *testing.T) {
	page := Paginate(sequence(5), PageRequest{Page: intPtr(4), Size: intPtr(10)})

	if len(page.Items) != 0 {
		t.Fatalf("expected empty slice past the end, got %d items", len(page.Items))
	}
	if page.Meta.Start != 0 {
		t.Fatalf("expected start 0 for empty slice, got %d", page.Meta.Start)
	}
	if page.Meta.End != 30 {
		t.Fatalf("expected unclamped end 30, got %d", page.Meta.End)
	}
	if page.StartIndex != 30 {
		t.Fatalf("expected unclamped start index 30, got %d", page.StartIndex)
	}
}

// A page large enough to overflow the start-index multiplication must
// behave like any other page past the end, not panic.
func TestPaginateHugePageSaturates(t *testing.T) {
	page := Paginate(sequence(5), PageRequest{Page: intPtr(math.MaxInt), Size: intPtr(10)})

	if len(page.Items) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(page.Items))
	}
	if page.Meta.Start != 0 {
		t.Fatalf("expected start 0, got %d", page.Meta.Start)
	}
	if page.StartIndex < 0 {
		t.Fatalf("expected saturated start index, got %d", page.StartIndex)
	}
	if page.Meta.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Meta.Total)
	}
}

func TestPaginateEmptySequence(t *testing.T) {
	page := Paginate([]int{}, PageRequest{})

	if page.Meta.Total != 0 || page.Meta.TotalPages != 0 {
		t.Fatalf("expected zero totals, got %d/%d", page.Meta.Total, page.Meta.TotalPages)
	}
	if page.Meta.Start != 0 || page.Meta.End != 0 {
		t.Fatalf("expected zero start/end, got %d/%d", page.Meta.Start, page.Meta.End)
	}
}
