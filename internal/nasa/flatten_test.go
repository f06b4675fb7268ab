package nasa

import (
	"encoding/json"
	"testing"
)

func TestFlattenFeedPreservesDocumentOrder(t *testing.T) {
	payload := json.RawMessage(`{
		"2025-01-02": [{"id": "b1", "name": "Bennu"}],
		"2025-01-01": [{"id": "a1", "name": "Apophis"}, {"id": "a2", "name": "Didymos"}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Date keys iterate in document order, not sorted order, and per-date
	// object order is kept.
	expected := []struct{ id, date string }{
		{"b1", "2025-01-02"},
		{"a1", "2025-01-01"},
		{"a2", "2025-01-01"},
	}
	for i, want := range expected {
		if rows[i].ID != want.id || rows[i].Date != want.date {
			t.Fatalf("row %d: expected (%s, %s), got (%s, %s)",
				i, want.id, want.date, rows[i].ID, rows[i].Date)
		}
	}
}

func TestFlattenFeedSelectsEarthApproach(t *testing.T) {
	payload := json.RawMessage(`{
		"2025-01-01": [{
			"id": "1",
			"name": "Ryugu",
			"close_approach_data": [
				{"orbiting_body": "Moon", "miss_distance": {"kilometers": "100.5"}},
				{"orbiting_body": "Earth", "miss_distance": {"kilometers": "200.25"},
				 "relative_velocity": {"kilometers_per_hour": "45000.1"},
				 "close_approach_date_full": "2025-Jan-01 12:00"}
			]
		}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.MissKm == nil || *row.MissKm != 200.25 {
		t.Fatalf("expected Earth approach miss distance 200.25, got %v", row.MissKm)
	}
	if row.VelKph == nil || *row.VelKph != 45000.1 {
		t.Fatalf("expected Earth approach velocity 45000.1, got %v", row.VelKph)
	}
	if row.ApproachDateFull == nil || *row.ApproachDateFull != "2025-Jan-01 12:00" {
		t.Fatalf("expected Earth approach date, got %v", row.ApproachDateFull)
	}
}

func TestFlattenFeedFallsBackToFirstApproach(t *testing.T) {
	payload := json.RawMessage(`{
		"2025-01-01": [{
			"id": "1",
			"close_approach_data": [
				{"orbiting_body": "Moon", "miss_distance": {"kilometers": "100.5"}},
				{"orbiting_body": "Venus", "miss_distance": {"kilometers": "999"}}
			]
		}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].MissKm == nil || *rows[0].MissKm != 100.5 {
		t.Fatalf("expected first approach to win without Earth entry, got %v", rows[0].MissKm)
	}
}

func TestFlattenFeedEmptyApproachListYieldsNulls(t *testing.T) {
	payload := json.RawMessage(`{
		"2025-01-01": [{"id": "1", "name": "Itokawa", "close_approach_data": []}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := rows[0]
	if row.MissKm != nil || row.VelKph != nil || row.ApproachDateFull != nil {
		t.Fatalf("expected null approach fields, got %v %v %v",
			row.MissKm, row.VelKph, row.ApproachDateFull)
	}
}

func TestFlattenFeedDiameterAndFlags(t *testing.T) {
	payload := json.RawMessage(`{
		"2025-01-01": [{
			"id": "1",
			"name": "Eros",
			"is_potentially_hazardous_asteroid": true,
			"is_sentry_object": true,
			"estimated_diameter": {"meters": {
				"estimated_diameter_min": 10.5,
				"estimated_diameter_max": 23.4
			}}
		}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := rows[0]
	if !row.Hazardous || !row.Sentry {
		t.Fatalf("expected hazardous and sentry flags set")
	}
	if row.DiameterMinM == nil || *row.DiameterMinM != 10.5 {
		t.Fatalf("expected diameter min 10.5, got %v", row.DiameterMinM)
	}
	if row.DiameterMaxM == nil || *row.DiameterMaxM != 23.4 {
		t.Fatalf("expected diameter max 23.4, got %v", row.DiameterMaxM)
	}
}

func TestFlattenFeedToleratesMalformedRecords(t *testing.T) {
	// Non-numeric miss distance and a wrongly typed name must not fail the
	// feed; bad fields resolve to their zero or null values.
	payload := json.RawMessage(`{
		"2025-01-01": [{
			"id": "1",
			"name": 42,
			"close_approach_data": [
				{"orbiting_body": "Earth", "miss_distance": {"kilometers": "n/a"}}
			]
		}]
	}`)

	rows, err := FlattenFeed(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].MissKm != nil {
		t.Fatalf("expected non-numeric miss distance to be null, got %v", *rows[0].MissKm)
	}
}

func TestFlattenFeedEmptyMapping(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`{}`)} {
		rows, err := FlattenFeed(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected empty output for %q, got %d rows", raw, len(rows))
		}
	}
}
