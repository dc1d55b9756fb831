package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"oppettider-backend/internal/storage"
)

func (s *Storage) GetAllMeetings(ctx context.Context) ([]*storage.Meeting, error) {
	const op = "storage.mysql.GetAllMeetings"

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, date, time, description, status FROM meetings ORDER BY date, time",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var meetings []*storage.Meeting
	for rows.Next() {
		meeting := &storage.Meeting{}
		if err := rows.Scan(&meeting.ID, &meeting.Title, &meeting.Date, &meeting.Time, &meeting.Description, &meeting.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		meetings = append(meetings, meeting)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meetings, nil
}

func (s *Storage) CreateMeeting(ctx context.Context, meeting storage.Meeting) (*storage.Meeting, error) {
	const op = "storage.mysql.CreateMeeting"

	meeting.ID = uuid.NewString()
	if meeting.Status == "" {
		meeting.Status = storage.MeetingScheduled
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO meetings (id, title, date, time, description, status) VALUES (?, ?, ?, ?, ?, ?)",
		meeting.ID, meeting.Title, meeting.Date, meeting.Time, meeting.Description, meeting.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &meeting, nil
}

func (s *Storage) UpdateMeeting(ctx context.Context, meeting storage.Meeting) error {
	const op = "storage.mysql.UpdateMeeting"

	res, err := s.db.ExecContext(ctx,
		"UPDATE meetings SET title = ?, date = ?, time = ?, description = ?, status = ? WHERE id = ?",
		meeting.Title, meeting.Date, meeting.Time, meeting.Description, meeting.Status, meeting.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: meeting %q: %w", op, meeting.ID, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteMeeting(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteMeeting"

	res, err := s.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: meeting %q: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
