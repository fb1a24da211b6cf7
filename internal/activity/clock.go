package activity

import (
	"time"
	_ "time/tzdata" // Asia/Manila must resolve on hosts without zoneinfo
)

// BusinessLocation is the time zone activities are logged in.
var BusinessLocation = loadBusinessLocation()

func loadBusinessLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// timestampLayout matches the millisecond ISO-8601 form browsers emit.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC the way the persistence endpoint expects.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
