package availability

import (
	"fmt"
	"sefasevim-service/internal/pkg/constvars"
	"time"
)

// Result is the outcome of resolving one date. Closed means the practice
// takes no bookings that day; an open day with an empty slot list is a
// different outcome and renders as an empty picker, not a closed notice.
type Result struct {
	Closed bool
	Slots  []string
}

// ResolveSlots maps a calendar date and a compiled schedule to the bookable
// hour slots for that date. It is a pure function: same inputs, same output.
//
// Lookup runs in two passes over the schedule, in stored order. A row naming
// the date's weekday directly always wins over a range row covering the same
// day, regardless of their relative positions.
func ResolveSlots(date time.Time, schedule Schedule) Result {
	day := date.Weekday()

	entry, found := matchEntry(day, schedule)
	if !found || entry.hours.kind == hoursClosed {
		return Result{Closed: true, Slots: []string{}}
	}

	slots := make([]string, 0)
	for hour := entry.hours.startHour; hour < entry.hours.endHour; hour++ {
		slots = append(slots, fmt.Sprintf(constvars.SlotLabelFormat, hour))
	}

	return Result{Closed: false, Slots: slots}
}

func matchEntry(day time.Weekday, schedule Schedule) (Entry, bool) {
	for _, entry := range schedule.entries {
		if entry.matcher.matchesSingle(day) {
			return entry, true
		}
	}
	for _, entry := range schedule.entries {
		if entry.matcher.matchesRange(day) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Offers reports whether slot is one of the labels ResolveSlots would return
// for date. The booking usecase uses it to reject stale form submissions.
func Offers(date time.Time, schedule Schedule, slot string) bool {
	result := ResolveSlots(date, schedule)
	if result.Closed {
		return false
	}
	for _, label := range result.Slots {
		if label == slot {
			return true
		}
	}
	return false
}
