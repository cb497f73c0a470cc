package document

import (
	"strings"
	"time"
)

// DefaultTimeZone is used to normalize update dates when no location is
// configured.
const DefaultTimeZone = "Asia/Tokyo"

// DateLayout is the printed date format.
const DateLayout = "2006/01/02"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006/1/2 15:04:05",
	"2006/1/2",
}

// FormatDate normalizes raw to YYYY/MM/DD in loc. Instants carrying an offset
// are converted to loc first; wall-clock values are read as loc. Blank input
// yields "" and unparseable input is returned verbatim.
func FormatDate(raw string, loc *time.Location) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if loc == nil {
		loc = DefaultLocation()
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc).Format(DateLayout)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.Format(DateLayout)
		}
	}
	return raw
}

// DefaultLocation loads DefaultTimeZone, falling back to a fixed +09:00 zone
// when the zone database is unavailable.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}
