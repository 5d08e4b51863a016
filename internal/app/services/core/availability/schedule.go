package availability

import (
	"sefasevim-service/internal/app/models"
	"strconv"
	"strings"
	"time"
)

// DefaultWorkingHours is the built-in fallback schedule, substituted whenever
// the stored working-hours document is missing or unreachable.
var DefaultWorkingHours = []models.WorkingHoursRow{
	{Day: "Pazartesi - Cuma", Hours: "09:00 - 19:00"},
	{Day: "Cumartesi", Hours: "10:00 - 16:00"},
	{Day: "Pazar", Hours: ClosedMarker},
}

type matcherKind int

const (
	matcherNone matcherKind = iota
	matcherSingle
	matcherRange
)

type dayMatcher struct {
	kind   matcherKind
	single time.Weekday
	start  time.Weekday
	end    time.Weekday
}

type hoursKind int

const (
	hoursClosed hoursKind = iota
	hoursOpen
)

type hoursSpec struct {
	kind      hoursKind
	startHour int
	endHour   int
}

// Entry is one compiled schedule row. The raw display strings are kept so
// the row can be echoed back in admin validation responses.
type Entry struct {
	Raw     models.WorkingHoursRow
	matcher dayMatcher
	hours   hoursSpec
}

// Schedule is an ordered, immutable compilation of working-hours rows.
// Resolution scans entries in the order the rows were stored.
type Schedule struct {
	entries []Entry
}

// Compile parses display rows into a Schedule once, so resolution never
// re-parses strings. Malformed rows degrade instead of failing: an
// unrecognized day token never matches any date, and unparseable hours
// compile to closed.
func Compile(rows []models.WorkingHoursRow) Schedule {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Raw:     row,
			matcher: compileDayToken(row.Day),
			hours:   compileHoursToken(row.Hours),
		})
	}
	return Schedule{entries: entries}
}

// Warnings lists raw rows that compiled to something weaker than they were
// written as: a day token that can never match, or an hours token that was
// not the closed marker yet still compiled to closed. Keyed by row index.
func (s Schedule) Warnings() map[int]string {
	warnings := make(map[int]string)
	for i, entry := range s.entries {
		if entry.matcher.kind == matcherNone {
			warnings[i] = entry.Raw.Day + " / " + entry.Raw.Hours
			continue
		}
		if entry.hours.kind == hoursClosed && strings.TrimSpace(entry.Raw.Hours) != ClosedMarker {
			warnings[i] = entry.Raw.Day + " / " + entry.Raw.Hours
		}
	}
	return warnings
}

func compileDayToken(token string) dayMatcher {
	if strings.Contains(token, tokenSeparator) {
		parts := strings.SplitN(token, tokenSeparator, 2)
		start, okStart := weekdayIndexOf(parts[0])
		end, okEnd := weekdayIndexOf(parts[1])
		if !okStart || !okEnd {
			return dayMatcher{kind: matcherNone}
		}
		// Inverted ranges (start > end) are kept but never satisfied; see
		// matches. Wrap-around weeks are a pending product decision.
		return dayMatcher{kind: matcherRange, start: start, end: end}
	}

	single, ok := weekdayIndexOf(token)
	if !ok {
		return dayMatcher{kind: matcherNone}
	}
	return dayMatcher{kind: matcherSingle, single: single}
}

func compileHoursToken(token string) hoursSpec {
	trimmed := strings.TrimSpace(token)
	if trimmed == ClosedMarker {
		return hoursSpec{kind: hoursClosed}
	}

	parts := strings.SplitN(trimmed, tokenSeparator, 2)
	if len(parts) != 2 {
		return hoursSpec{kind: hoursClosed}
	}

	startHour, okStart := parseHour(parts[0])
	endHour, okEnd := parseHour(parts[1])
	if !okStart || !okEnd {
		return hoursSpec{kind: hoursClosed}
	}

	return hoursSpec{kind: hoursOpen, startHour: startHour, endHour: endHour}
}

// parseHour reads the hour component of an "HH:MM" boundary. Minutes are
// parsed for shape but discarded: the booking grid only ever offers whole
// hours, so "09:30" contributes 09. Kept for compatibility with the stored
// schedules; whether half hours should round instead is an open product
// question.
func parseHour(boundary string) (int, bool) {
	pieces := strings.SplitN(strings.TrimSpace(boundary), ":", 2)
	if len(pieces) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(pieces[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	if _, err := strconv.Atoi(pieces[1]); err != nil {
		return 0, false
	}

	return hour, true
}

func (m dayMatcher) matchesSingle(day time.Weekday) bool {
	return m.kind == matcherSingle && m.single == day
}

func (m dayMatcher) matchesRange(day time.Weekday) bool {
	if m.kind != matcherRange || m.start > m.end {
		return false
	}
	return m.start <= day && day <= m.end
}
