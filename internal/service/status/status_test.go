package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oppettider-backend/internal/storage"
)

// 2025-05-05 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2025, 5, 5, hour, min, 0, 0, time.UTC)
}

func schedule(days map[string][]storage.TimeSlot) []storage.DaySchedule {
	var out []storage.DaySchedule
	for _, label := range storage.WeekdayOrder {
		out = append(out, storage.DaySchedule{
			ID:    label,
			Day:   label,
			Color: storage.DayColors[label],
			Times: days[label],
		})
	}
	return out
}

func slot(start, end string) storage.TimeSlot {
	return storage.TimeSlot{ID: start + "-" + end, Start: start, End: end}
}

func TestEvaluate_OverrideWins(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "17:00")},
	})

	snap := Evaluate(monday(10, 0), sched, storage.Override{Active: true, Message: "Closed for holiday"})

	assert.Equal(t, Away, snap.Status)
	assert.Nil(t, snap.CurrentSlot)

	// Override wins even over an empty schedule.
	snap = Evaluate(monday(3, 0), nil, storage.Override{Active: true})
	assert.Equal(t, Away, snap.Status)
}

func TestEvaluate_OpenWithinSlot(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00")},
	})

	snap := Evaluate(monday(10, 30), sched, storage.Override{})

	require.Equal(t, Open, snap.Status)
	require.NotNil(t, snap.CurrentSlot)
	assert.Equal(t, "09:00", snap.CurrentSlot.Start)
	assert.Equal(t, "12:00", snap.CurrentSlot.End)
}

func TestEvaluate_HalfOpenInterval(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00")},
	})

	// Start is inclusive.
	assert.Equal(t, Open, Evaluate(monday(9, 0), sched, storage.Override{}).Status)
	// End is exclusive.
	assert.Equal(t, Closed, Evaluate(monday(12, 0), sched, storage.Override{}).Status)
}

func TestEvaluate_ClosedOutsideSlots(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00"), slot("13:00", "17:00")},
	})

	snap := Evaluate(monday(12, 30), sched, storage.Override{})
	assert.Equal(t, Closed, snap.Status)
	assert.Nil(t, snap.CurrentSlot)
}

func TestEvaluate_EmptySchedule(t *testing.T) {
	assert.Equal(t, Closed, Evaluate(monday(10, 0), nil, storage.Override{}).Status)
	assert.Equal(t, Closed, Evaluate(monday(10, 0), []storage.DaySchedule{}, storage.Override{}).Status)
}

func TestEvaluate_SkipsMalformedTimes(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("garbage", "12:00"), slot("09:00", "25:99"), slot("10:00", "11:00")},
	})

	snap := Evaluate(monday(10, 30), sched, storage.Override{})
	require.Equal(t, Open, snap.Status)
	assert.Equal(t, "10:00", snap.CurrentSlot.Start)
}

func TestFindNextOpening_SameDayLaterSlot(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00"), slot("13:00", "17:00")},
	})

	next, ok := FindNextOpening(monday(12, 30), sched)

	require.True(t, ok)
	assert.Equal(t, "Mån", next.Day)
	assert.Equal(t, "13:00", next.Time)
	assert.Equal(t, 30, next.MinutesUntil)
}

func TestFindNextOpening_StartedSlotDoesNotCount(t *testing.T) {
	// Monday 10:30, the only slot of the whole week started 09:00. Today is
	// skipped (the slot is in progress, not upcoming) and no other day has
	// hours, so there is no next opening at all.
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00")},
	})

	_, ok := FindNextOpening(monday(10, 30), sched)
	assert.False(t, ok)
}

func TestFindNextOpening_NextDay(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "12:00")},
		"Tis": {slot("08:00", "16:00")},
	})

	next, ok := FindNextOpening(monday(10, 30), sched)

	require.True(t, ok)
	assert.Equal(t, "Tis", next.Day)
	assert.Equal(t, "08:00", next.Time)
	// 21h30 until tomorrow 08:00.
	assert.Equal(t, 24*60+(8*60-(10*60+30)), next.MinutesUntil)
}

func TestFindNextOpening_UnsortedSlots(t *testing.T) {
	// Stored order is late slot first; the scan must still pick the earlier one.
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("15:00", "17:00"), slot("13:00", "14:00")},
	})

	next, ok := FindNextOpening(monday(12, 0), sched)

	require.True(t, ok)
	assert.Equal(t, "13:00", next.Time)
	assert.Equal(t, 60, next.MinutesUntil)
}

func TestFindNextOpening_EmptyWeek(t *testing.T) {
	_, ok := FindNextOpening(monday(10, 0), schedule(nil))
	assert.False(t, ok)

	_, ok = FindNextOpening(monday(10, 0), nil)
	assert.False(t, ok)
}

func TestFindNextOpening_NeverInThePast(t *testing.T) {
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("06:00", "08:00"), slot("18:00", "20:00")},
		"Ons": {slot("10:00", "12:00")},
	})

	for _, now := range []time.Time{monday(0, 0), monday(7, 0), monday(17, 59), monday(18, 0), monday(23, 59)} {
		next, ok := FindNextOpening(now, sched)
		require.True(t, ok, "now=%v", now)
		assert.Greater(t, next.MinutesUntil, 0, "now=%v", now)
	}
}

func TestFindNextOpening_AwayIgnored(t *testing.T) {
	// Away mode hides the schedule on the board, but next opening is still
	// computed from the schedule alone.
	sched := schedule(map[string][]storage.TimeSlot{
		"Mån": {slot("09:00", "17:00")},
		"Tis": {slot("09:00", "17:00")},
	})
	now := monday(10, 0)

	snap := Evaluate(now, sched, storage.Override{Active: true})
	assert.Equal(t, Away, snap.Status)

	next, ok := FindNextOpening(now, sched)
	require.True(t, ok)
	assert.Equal(t, "Tis", next.Day)
}

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"", 0, true},
		{"aa:bb", 0, true},
	}
	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(monday(0, 0)))
	assert.Equal(t, "Mån", DayLabel(monday(0, 0)))

	sunday := time.Date(2025, 5, 11, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, WeekdayIndex(sunday))
	assert.Equal(t, "Sön", DayLabel(sunday))
}

func TestProgressUntilOpen(t *testing.T) {
	assert.InDelta(t, 100, ProgressUntilOpen(0), 0.001)
	assert.InDelta(t, 50, ProgressUntilOpen(6*60), 0.001)
	assert.InDelta(t, 0, ProgressUntilOpen(12*60), 0.001)
	// Beyond twelve hours the bar stays empty.
	assert.InDelta(t, 0, ProgressUntilOpen(20*60), 0.001)
	// Negative input clamps rather than overflowing the bar.
	assert.InDelta(t, 100, ProgressUntilOpen(-5), 0.001)
}

func TestProgressUntilClose(t *testing.T) {
	day := slot("09:00", "17:00")

	assert.InDelta(t, 0, ProgressUntilClose(9*60, day), 0.001)
	assert.InDelta(t, 50, ProgressUntilClose(13*60, day), 0.001)
	assert.InDelta(t, 100, ProgressUntilClose(17*60, day), 0.001)

	// Degenerate slot must not divide by zero.
	assert.InDelta(t, 0, ProgressUntilClose(10*60, slot("10:00", "10:00")), 0.001)

	// Wrap past midnight: 22:00-02:00, at 00:00 half the slot has passed.
	night := slot("22:00", "02:00")
	assert.InDelta(t, 50, ProgressUntilClose(0, night), 0.001)

	assert.InDelta(t, 0, ProgressUntilClose(10*60, slot("x", "17:00")), 0.001)
}

func TestFormatWait(t *testing.T) {
	assert.Equal(t, "30 minuter", FormatWait(30))
	assert.Equal(t, "1 timme", FormatWait(60))
	assert.Equal(t, "2 timmar", FormatWait(120))
	assert.Equal(t, "1 timmar och 30 minuter", FormatWait(90))
	assert.Equal(t, "2 timmar och 15 minuter", FormatWait(135))
}
