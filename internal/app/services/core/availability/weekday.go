package availability

import (
	"strings"
	"time"
)

// dayNames is the canonical week ordering, anchored to time.Weekday's native
// numbering (Sunday = 0). Schedule rows written by the admin use these exact
// Turkish names; anything else never matches.
var dayNames = [7]string{
	"Pazar",
	"Pazartesi",
	"Salı",
	"Çarşamba",
	"Perşembe",
	"Cuma",
	"Cumartesi",
}

// ClosedMarker is the literal hours token meaning the practice takes no
// bookings that day.
const ClosedMarker = "Kapalı"

const tokenSeparator = "-"

// DayName returns the canonical Turkish name for w.
func DayName(w time.Weekday) string {
	return dayNames[int(w)]
}

func weekdayIndexOf(name string) (time.Weekday, bool) {
	trimmed := strings.TrimSpace(name)
	for i, dayName := range dayNames {
		if dayName == trimmed {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
