package calendar

import (
	"fmt"
	"time"
)

// zoneless layouts accepted for times without an offset, most specific first.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// parseTime reads an RFC 3339 time. Times without an offset are taken in loc.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: got %q", ErrInvalidTime, s)
}

// dayBounds returns local midnight of date and the following midnight.
func dayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	return start, start.AddDate(0, 0, 1), nil
}
