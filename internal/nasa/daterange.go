package nasa

import (
	"regexp"
	"time"
)

// datePattern is a shape check only; month/day values outside the calendar
// are not rejected unless both bounds are present and get parsed.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	dateLayout   = "2006-01-02"
	maxRangeDays = 7
)

// ValidateRange checks the optional start/end calendar-date strings before
// any upstream call. Empty strings mean absent. The whole-day span between
// the bounds may not exceed 7 days.
func ValidateRange(start, end string) error {
	if (start != "" && !datePattern.MatchString(start)) ||
		(end != "" && !datePattern.MatchString(end)) {
		return invalidInput("Invalid date format. Use YYYY-MM-DD")
	}

	if start == "" || end == "" {
		return nil
	}

	startD, errStart := time.Parse(dateLayout, start)
	endD, errEnd := time.Parse(dateLayout, end)
	if errStart != nil || errEnd != nil {
		return invalidInput("Invalid date value")
	}

	if endD.Before(startD) {
		return invalidInput("endDate must be >= startDate")
	}

	if int(endD.Sub(startD).Hours()/24) > maxRangeDays {
		return invalidInput("Date range too large (max 7 days)")
	}

	return nil
}
