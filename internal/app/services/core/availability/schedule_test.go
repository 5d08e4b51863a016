package availability

import (
	"sefasevim-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompile_DayTokens(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected dayMatcher
	}{
		{
			name:     "single day",
			token:    "Pazartesi",
			expected: dayMatcher{kind: matcherSingle, single: time.Monday},
		},
		{
			name:     "single day with surrounding whitespace",
			token:    "  Cumartesi ",
			expected: dayMatcher{kind: matcherSingle, single: time.Saturday},
		},
		{
			name:     "range",
			token:    "Pazartesi - Cuma",
			expected: dayMatcher{kind: matcherRange, start: time.Monday, end: time.Friday},
		},
		{
			name:     "range without spaces around separator",
			token:    "Salı-Perşembe",
			expected: dayMatcher{kind: matcherRange, start: time.Tuesday, end: time.Thursday},
		},
		{
			name:     "inverted range is kept as written",
			token:    "Cuma - Pazartesi",
			expected: dayMatcher{kind: matcherRange, start: time.Friday, end: time.Monday},
		},
		{
			name:     "unknown day name never matches",
			token:    "Wednesday",
			expected: dayMatcher{kind: matcherNone},
		},
		{
			name:     "range with one unknown side never matches",
			token:    "Pazartesi - Friday",
			expected: dayMatcher{kind: matcherNone},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := Compile([]models.WorkingHoursRow{{Day: tc.token, Hours: "09:00 - 10:00"}})
			assert.Equal(t, tc.expected, schedule.entries[0].matcher)
		})
	}
}

func TestCompile_HoursTokens(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected hoursSpec
	}{
		{
			name:     "open range",
			token:    "09:00 - 19:00",
			expected: hoursSpec{kind: hoursOpen, startHour: 9, endHour: 19},
		},
		{
			name:     "closed marker",
			token:    "Kapalı",
			expected: hoursSpec{kind: hoursClosed},
		},
		{
			name:     "closed marker with whitespace",
			token:    " Kapalı ",
			expected: hoursSpec{kind: hoursClosed},
		},
		{
			name: "minutes are discarded",
			// "09:30 - 18:30" keeps only the hour components.
			token:    "09:30 - 18:30",
			expected: hoursSpec{kind: hoursOpen, startHour: 9, endHour: 18},
		},
		{
			name:     "garbage degrades to closed",
			token:    "whenever",
			expected: hoursSpec{kind: hoursClosed},
		},
		{
			name:     "missing end boundary degrades to closed",
			token:    "09:00",
			expected: hoursSpec{kind: hoursClosed},
		},
		{
			name:     "non-numeric hour degrades to closed",
			token:    "ab:00 - 19:00",
			expected: hoursSpec{kind: hoursClosed},
		},
		{
			name:     "hour out of range degrades to closed",
			token:    "25:00 - 26:00",
			expected: hoursSpec{kind: hoursClosed},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := Compile([]models.WorkingHoursRow{{Day: "Pazartesi", Hours: tc.token}})
			assert.Equal(t, tc.expected, schedule.entries[0].hours)
		})
	}
}

func TestCompile_PreservesRowOrder(t *testing.T) {
	rows := []models.WorkingHoursRow{
		{Day: "Pazartesi - Cuma", Hours: "09:00 - 19:00"},
		{Day: "Pazartesi - Cuma", Hours: "10:00 - 11:00"},
	}
	schedule := Compile(rows)

	// First-match-wins: the earlier range row answers for Monday.
	result := ResolveSlots(testMonday, schedule)
	assert.Len(t, result.Slots, 10)
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Pazar", DayName(time.Sunday))
	assert.Equal(t, "Pazartesi", DayName(time.Monday))
	assert.Equal(t, "Cumartesi", DayName(time.Saturday))
}

func TestSchedule_Warnings(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi", Hours: "09:00 - 17:00"},
		{Day: "Monday", Hours: "09:00 - 17:00"},
		{Day: "Salı", Hours: "garbage"},
		{Day: "Pazar", Hours: "Kapalı"},
	})

	warnings := schedule.Warnings()
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings, 1)
	assert.Contains(t, warnings, 2)
	assert.NotContains(t, warnings, 3, "an explicit closed row is not a warning")
}
