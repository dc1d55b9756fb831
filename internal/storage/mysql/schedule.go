package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"oppettider-backend/internal/storage"
)

// GetSchedule returns the seven weekday records in board order with their
// slots attached. Slots come back sorted by start time regardless of insert
// order; zero-padded HH:MM sorts correctly as text.
func (s *Storage) GetSchedule(ctx context.Context) ([]storage.DaySchedule, error) {
	const op = "storage.mysql.GetSchedule"

	rows, err := s.db.QueryContext(ctx, "SELECT id, day FROM days ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	byID := make(map[string]*storage.DaySchedule)
	var ordered []*storage.DaySchedule

	for rows.Next() {
		day := &storage.DaySchedule{Times: []storage.TimeSlot{}}
		if err := rows.Scan(&day.ID, &day.Day); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		day.Color = storage.DayColors[day.Day]
		byID[day.ID] = day
		ordered = append(ordered, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slotRows, err := s.db.QueryContext(ctx, "SELECT id, day_id, `start`, `end` FROM time_slots")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var slot storage.TimeSlot
		var dayID string
		if err := slotRows.Scan(&slot.ID, &dayID, &slot.Start, &slot.End); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if day, ok := byID[dayID]; ok {
			day.Times = append(day.Times, slot)
		}
	}
	if err = slotRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule := make([]storage.DaySchedule, 0, len(ordered))
	for _, day := range ordered {
		sort.Slice(day.Times, func(i, j int) bool {
			return day.Times[i].Start < day.Times[j].Start
		})
		schedule = append(schedule, *day)
	}

	return schedule, nil
}

func (s *Storage) AddTimeSlot(ctx context.Context, dayID, start, end string) (*storage.TimeSlot, error) {
	const op = "storage.mysql.AddTimeSlot"

	var exists string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM days WHERE id = ?", dayID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: day %q: %w", op, dayID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slot := &storage.TimeSlot{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO time_slots (id, day_id, `start`, `end`) VALUES (?, ?, ?, ?)",
		slot.ID, dayID, slot.Start, slot.End,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

func (s *Storage) UpdateTimeSlot(ctx context.Context, id, start, end string) error {
	const op = "storage.mysql.UpdateTimeSlot"

	res, err := s.db.ExecContext(ctx,
		"UPDATE time_slots SET `start` = ?, `end` = ? WHERE id = ?",
		start, end, id,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: slot %q: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteTimeSlot(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteTimeSlot"

	res, err := s.db.ExecContext(ctx, "DELETE FROM time_slots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: slot %q: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
