package hafas

import (
	"strconv"
	"time"

	_ "time/tzdata"
)

// ReferenceTimezone is the civil timezone HAFAS reports every wall-clock time in.
const ReferenceTimezone = "Europe/Berlin"

var epoch = time.Unix(0, 0)

// WallClockToTime returns the instant a wall-clock reading in loc denotes. Hours past 23
// belong to the previous service day and roll over onto the following calendar day.
//
// The offset is looked up at the reading interpreted as UTC, which is exact everywhere
// except inside a DST transition hour, where the result may be one hour off.
func WallClockToTime(loc *time.Location, year int, month time.Month, day, hours, minutes, seconds int) time.Time {
	asUTC := time.Date(year, month, day, hours, minutes, seconds, 0, time.UTC)
	_, offset := asUTC.In(loc).Zone()

	return asUTC.Add(-time.Duration(offset) * time.Second)
}

// ParseDateTime converts a HAFAS date (YYYYMMDD) and clock (HHMMSS, or DDHHMMSS with a
// leading day offset of at most two digits, or HHMM) into an instant. Missing or
// malformed input gives epoch 0 so a single bad field never breaks the board.
func ParseDateTime(loc *time.Location, date string, clock string) time.Time {
	if len(date) != 8 || !isDigits(date) {
		return epoch
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[4:6])
	day, _ := strconv.Atoi(date[6:8])

	hours, minutes, seconds, ok := parseClock(clock)
	if !ok {
		return epoch
	}

	return WallClockToTime(loc, year, time.Month(month), day, hours, minutes, seconds)
}

func parseClock(clock string) (int, int, int, bool) {
	if !isDigits(clock) {
		return 0, 0, 0, false
	}

	var hours, minutes, seconds int
	switch {
	case len(clock) == 4:
		hours, _ = strconv.Atoi(clock[0:2])
		minutes, _ = strconv.Atoi(clock[2:4])
	case len(clock) == 6:
		hours, _ = strconv.Atoi(clock[0:2])
		minutes, _ = strconv.Atoi(clock[2:4])
		seconds, _ = strconv.Atoi(clock[4:6])
	case len(clock) > 6 && len(clock) <= 8:
		days, _ := strconv.Atoi(clock[:len(clock)-6])
		hours, minutes, seconds, _ = parseClock(clock[len(clock)-6:])
		hours += days * 24
	default:
		return 0, 0, 0, false
	}

	return hours, minutes, seconds, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
