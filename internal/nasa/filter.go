package nasa

import "strings"

// FilterRows returns the rows matching q by case-insensitive name match or
// by id match. The id side is compared as-is against the folded query; only
// the name is folded on both sides. An empty q returns the input unchanged.
func FilterRows(rows []ApproachRow, q string) []ApproachRow {
	if q == "" {
		return rows
	}

	qq := strings.ToLower(q)
	filtered := []ApproachRow{}
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), qq) || strings.Contains(row.ID, qq) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
