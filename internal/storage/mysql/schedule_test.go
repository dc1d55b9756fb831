package mysql

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oppettider-backend/internal/storage"
)

func seedDays(t *testing.T) {
	t.Helper()
	stmt := "INSERT IGNORE INTO days (id, day, sort_order) VALUES (?, ?, ?)"
	for i, label := range storage.WeekdayOrder {
		_, err := testDB.Exec(stmt, fmt.Sprintf("day_%d", i+1), label, i+1)
		require.NoError(t, err)
	}
}

func cleanupSlots(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec("DELETE FROM time_slots")
	require.NoError(t, err)
}

func TestStorage_AddTimeSlot_RoundTrip(t *testing.T) {
	s := testStorage(t)
	seedDays(t)
	cleanupSlots(t)

	ctx := context.Background()

	// Insert out of order; GetSchedule must hand them back chronological.
	afternoon, err := s.AddTimeSlot(ctx, "day_1", "13:00", "17:00")
	require.NoError(t, err)
	morning, err := s.AddTimeSlot(ctx, "day_1", "09:00", "12:00")
	require.NoError(t, err)

	schedule, err := s.GetSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, schedule, 7)

	monday := schedule[0]
	assert.Equal(t, "day_1", monday.ID)
	assert.Equal(t, "Mån", monday.Day)
	require.Len(t, monday.Times, 2)

	assert.Equal(t, morning.ID, monday.Times[0].ID)
	assert.Equal(t, "09:00", monday.Times[0].Start)
	assert.Equal(t, "12:00", monday.Times[0].End)
	assert.Equal(t, afternoon.ID, monday.Times[1].ID)
	assert.Equal(t, "13:00", monday.Times[1].Start)

	// Days without slots still come back, with an empty (not nil) list.
	tuesday := schedule[1]
	assert.Equal(t, "Tis", tuesday.Day)
	assert.NotNil(t, tuesday.Times)
	assert.Empty(t, tuesday.Times)
}

func TestStorage_AddTimeSlot_UnknownDay(t *testing.T) {
	s := testStorage(t)
	seedDays(t)

	_, err := s.AddTimeSlot(context.Background(), "day_99", "09:00", "12:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_UpdateTimeSlot(t *testing.T) {
	s := testStorage(t)
	seedDays(t)
	cleanupSlots(t)

	ctx := context.Background()

	slot, err := s.AddTimeSlot(ctx, "day_2", "09:00", "12:00")
	require.NoError(t, err)

	require.NoError(t, s.UpdateTimeSlot(ctx, slot.ID, "10:00", "14:30"))

	schedule, err := s.GetSchedule(ctx)
	require.NoError(t, err)
	tuesday := schedule[1]
	require.Len(t, tuesday.Times, 1)
	assert.Equal(t, "10:00", tuesday.Times[0].Start)
	assert.Equal(t, "14:30", tuesday.Times[0].End)
}

func TestStorage_UpdateTimeSlot_NotFound(t *testing.T) {
	s := testStorage(t)
	cleanupSlots(t)

	err := s.UpdateTimeSlot(context.Background(), "no-such-slot", "09:00", "12:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DeleteTimeSlot(t *testing.T) {
	s := testStorage(t)
	seedDays(t)
	cleanupSlots(t)

	ctx := context.Background()

	slot, err := s.AddTimeSlot(ctx, "day_3", "09:00", "12:00")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTimeSlot(ctx, slot.ID))

	schedule, err := s.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Empty(t, schedule[2].Times)
}

func TestStorage_DeleteTimeSlot_NotFound(t *testing.T) {
	s := testStorage(t)
	cleanupSlots(t)

	err := s.DeleteTimeSlot(context.Background(), "no-such-slot")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
