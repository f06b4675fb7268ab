package nasa

import "encoding/json"

// ApproachRow is one flattened near-earth-object entry, one per
// (feed date, object) pair. Rows are recomputed per request and never
// stored. Nullable fields use pointers so absent upstream data serializes
// as JSON null.
type ApproachRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Date is the feed key the object was listed under, not the object's
	// own approach date.
	Date string `json:"date"`

	Hazardous bool `json:"hazardous"`
	Sentry    bool `json:"sentry"`

	DiameterMinM *float64 `json:"diameterMinM"`
	DiameterMaxM *float64 `json:"diameterMaxM"`

	MissKm           *float64 `json:"missKm"`
	VelKph           *float64 `json:"velKph"`
	ApproachDateFull *string  `json:"approachDateFull"`
}

// neoObject mirrors the upstream NeoWs record shape; only the fields the
// flattener reads are declared.
type neoObject struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Hazardous         bool   `json:"is_potentially_hazardous_asteroid"`
	Sentry            bool   `json:"is_sentry_object"`
	EstimatedDiameter *struct {
		Meters *struct {
			Min *float64 `json:"estimated_diameter_min"`
			Max *float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	CloseApproachData []closeApproach `json:"close_approach_data"`
}

// closeApproach is one approach sub-record. Distance and velocity arrive
// as decimal strings from upstream.
type closeApproach struct {
	OrbitingBody          string  `json:"orbiting_body"`
	CloseApproachDateFull *string `json:"close_approach_date_full"`
	MissDistance          *struct {
		Kilometers string `json:"kilometers"`
	} `json:"miss_distance"`
	RelativeVelocity *struct {
		KilometersPerHour string `json:"kilometers_per_hour"`
	} `json:"relative_velocity"`
}

// feedPayload is the feed-by-range upstream envelope. The date-keyed
// object map is kept raw so its key order can be preserved while decoding.
type feedPayload struct {
	NearEarthObjects json.RawMessage `json:"near_earth_objects"`
	Links            json.RawMessage `json:"links"`
	ElementCount     int64           `json:"element_count"`
}

// EnrichedImage is one image-library search result with its display href
// resolved by the secondary fetch.
type EnrichedImage struct {
	NasaID         string   `json:"nasa_id"`
	Href           string   `json:"href"`
	DateCreated    string   `json:"date_created"`
	Description    string   `json:"description"`
	Description508 string   `json:"description_508"`
	Keywords       []string `json:"keywords"`
	MediaType      string   `json:"media_type"`
	Title          string   `json:"title"`
	Photographer   string   `json:"photographer"`
}

// searchItem is one raw image-library search hit before enrichment.
type searchItem struct {
	Href string          `json:"href"`
	Data []EnrichedImage `json:"data"`
}

// searchPayload is the image-library search envelope.
type searchPayload struct {
	Collection struct {
		Items []searchItem `json:"items"`
	} `json:"collection"`
}
