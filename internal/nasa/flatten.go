package nasa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlattenFeed converts the date-keyed near_earth_objects mapping into a
// flat row sequence, one row per (date, object) pair. Date keys are walked
// in document order with a token decoder, so row order matches the
// upstream payload exactly; per-date object order is preserved as-is.
// An absent or null mapping yields no rows. Malformed individual records
// never fail the feed; their unreadable fields resolve to null.
func FlattenFeed(raw json.RawMessage) ([]ApproachRow, error) {
	rows := []ApproachRow{}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return rows, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("near_earth_objects: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		date, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("near_earth_objects: unexpected key %v", keyTok)
		}

		var objs []json.RawMessage
		if err := dec.Decode(&objs); err != nil {
			return nil, err
		}

		for _, obj := range objs {
			rows = append(rows, toRow(obj, date))
		}
	}

	return rows, nil
}

// toRow builds one ApproachRow. date is the feed key the object was found
// under, which is not necessarily the object's own approach date.
func toRow(raw json.RawMessage, date string) ApproachRow {
	var neo neoObject
	// Best effort: fields that fail to decode stay at their zero values.
	_ = json.Unmarshal(raw, &neo)

	row := ApproachRow{
		ID:        neo.ID,
		Name:      neo.Name,
		Date:      date,
		Hazardous: neo.Hazardous,
		Sentry:    neo.Sentry,
	}

	if d := neo.EstimatedDiameter; d != nil && d.Meters != nil {
		row.DiameterMinM = d.Meters.Min
		row.DiameterMaxM = d.Meters.Max
	}

	approach := pickApproach(neo.CloseApproachData)
	if approach == nil {
		return row
	}

	if approach.MissDistance != nil {
		row.MissKm = parseUpstreamNumber(approach.MissDistance.Kilometers)
	}
	if approach.RelativeVelocity != nil {
		row.VelKph = parseUpstreamNumber(approach.RelativeVelocity.KilometersPerHour)
	}
	row.ApproachDateFull = approach.CloseApproachDateFull

	return row
}

// pickApproach selects the sub-record whose orbiting body is Earth, else
// the first in upstream order, else nil.
func pickApproach(approaches []closeApproach) *closeApproach {
	for i := range approaches {
		if approaches[i].OrbitingBody == "Earth" {
			return &approaches[i]
		}
	}
	if len(approaches) > 0 {
		return &approaches[0]
	}
	return nil
}

// parseUpstreamNumber parses the decimal strings NeoWs uses for distances
// and velocities. Empty or non-numeric values resolve to null.
func parseUpstreamNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}
