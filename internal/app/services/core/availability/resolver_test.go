package availability

import (
	"sefasevim-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Fixed calendar dates with known weekdays.
var (
	testMonday    = time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)
	testTuesday   = time.Date(2025, 1, 7, 0, 0, 0, 0, time.Local)
	testWednesday = time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local)
	testThursday  = time.Date(2025, 1, 9, 0, 0, 0, 0, time.Local)
	testFriday    = time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)
	testSaturday  = time.Date(2025, 1, 4, 0, 0, 0, 0, time.Local)
	testSunday    = time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
)

func TestResolveSlots_DirectMatchWinsOverRange(t *testing.T) {
	// The range row comes first and also covers Wednesday, but the row
	// naming the day directly must win.
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi - Cuma", Hours: "09:00 - 19:00"},
		{Day: "Çarşamba", Hours: "14:00 - 16:00"},
	})

	result := ResolveSlots(testWednesday, schedule)

	assert.False(t, result.Closed)
	assert.Equal(t, []string{"14:00", "15:00"}, result.Slots)
}

func TestResolveSlots_RangeMatchIsInclusive(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi - Cuma", Hours: "09:00 - 12:00"},
	})

	testCases := []struct {
		name   string
		date   time.Time
		closed bool
	}{
		{name: "monday start bound matches", date: testMonday, closed: false},
		{name: "wednesday inside matches", date: testWednesday, closed: false},
		{name: "friday end bound matches", date: testFriday, closed: false},
		{name: "saturday outside does not match", date: testSaturday, closed: true},
		{name: "sunday outside does not match", date: testSunday, closed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ResolveSlots(tc.date, schedule)
			assert.Equal(t, tc.closed, result.Closed)
		})
	}
}

func TestResolveSlots_InvertedRangeNeverMatches(t *testing.T) {
	// "Cuma - Pazartesi" would be a plausible wrap-around schedule, but the
	// lookup rule is start <= day <= end, so it matches nothing.
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Cuma - Pazartesi", Hours: "09:00 - 19:00"},
	})

	allDays := []time.Time{
		testSunday, testMonday, testTuesday, testWednesday,
		testThursday, testFriday, testSaturday,
	}
	for _, date := range allDays {
		result := ResolveSlots(date, schedule)
		assert.True(t, result.Closed, "weekday %s should not match an inverted range", date.Weekday())
	}
}

func TestResolveSlots_ClosedMarkerReturnsClosed(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazar", Hours: ClosedMarker},
	})

	result := ResolveSlots(testSunday, schedule)

	assert.True(t, result.Closed)
	assert.Empty(t, result.Slots)
}

func TestResolveSlots_FullWorkday(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi", Hours: "09:00 - 19:00"},
	})

	result := ResolveSlots(testMonday, schedule)

	assert.False(t, result.Closed)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}, result.Slots)
}

func TestResolveSlots_DegenerateHoursIsEmptyButOpen(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi", Hours: "10:00 - 10:00"},
	})

	result := ResolveSlots(testMonday, schedule)

	assert.False(t, result.Closed, "equal bounds mean an open day with no slots, not a closed day")
	assert.Empty(t, result.Slots)
}

func TestResolveSlots_InvertedHoursIsEmptyButOpen(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Pazartesi", Hours: "19:00 - 09:00"},
	})

	result := ResolveSlots(testMonday, schedule)

	assert.False(t, result.Closed)
	assert.Empty(t, result.Slots)
}

func TestResolveSlots_NoMatchingEntryReturnsClosed(t *testing.T) {
	schedule := Compile([]models.WorkingHoursRow{
		{Day: "Cumartesi", Hours: "10:00 - 16:00"},
	})

	result := ResolveSlots(testMonday, schedule)

	assert.True(t, result.Closed)
}

func TestResolveSlots_EmptySchedule(t *testing.T) {
	result := ResolveSlots(testMonday, Compile(nil))

	assert.True(t, result.Closed)
	assert.Empty(t, result.Slots)
}

func TestResolveSlots_DefaultSchedule(t *testing.T) {
	schedule := Compile(DefaultWorkingHours)

	t.Run("wednesday resolves through the weekday range", func(t *testing.T) {
		result := ResolveSlots(testWednesday, schedule)
		assert.False(t, result.Closed)
		assert.Equal(t, []string{
			"09:00", "10:00", "11:00", "12:00", "13:00",
			"14:00", "15:00", "16:00", "17:00", "18:00",
		}, result.Slots)
	})

	t.Run("saturday resolves through its direct row", func(t *testing.T) {
		result := ResolveSlots(testSaturday, schedule)
		assert.False(t, result.Closed)
		assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}, result.Slots)
	})

	t.Run("sunday is closed", func(t *testing.T) {
		result := ResolveSlots(testSunday, schedule)
		assert.True(t, result.Closed)
	})
}

func TestResolveSlots_Idempotent(t *testing.T) {
	schedule := Compile(DefaultWorkingHours)

	first := ResolveSlots(testTuesday, schedule)
	second := ResolveSlots(testTuesday, schedule)

	assert.Equal(t, first, second)
}

func TestOffers(t *testing.T) {
	schedule := Compile(DefaultWorkingHours)

	assert.True(t, Offers(testWednesday, schedule, "09:00"))
	assert.True(t, Offers(testSaturday, schedule, "15:00"))
	assert.False(t, Offers(testSaturday, schedule, "16:00"), "end bound is exclusive")
	assert.False(t, Offers(testSunday, schedule, "10:00"), "closed day offers nothing")
	assert.False(t, Offers(testWednesday, schedule, "08:00"))
}
