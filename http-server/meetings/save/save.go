package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"oppettider-backend/internal/service/status"
	"oppettider-backend/internal/storage"
)

type MeetingCreator interface {
	CreateMeeting(ctx context.Context, meeting storage.Meeting) (*storage.Meeting, error)
}

type Request struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ValidateMeeting checks date, time and status before anything touches
// storage, and zero-pads the time so "9:00" stores as "09:00".
func ValidateMeeting(req *Request) error {
	if req.Title == "" {
		return errors.New("title is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	minutes, err := status.TimeToMinutes(req.Time)
	if err != nil {
		return errors.New("time must be HH:MM")
	}
	req.Time = status.MinutesToTime(minutes)
	if req.Status != "" && !storage.ValidMeetingStatus(req.Status) {
		return errors.New("unknown meeting status")
	}
	return nil
}

// SaveMeeting adds a meeting to the calendar.
func SaveMeeting(log *slog.Logger, meetings MeetingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetings.SaveMeeting"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		if err := ValidateMeeting(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		meeting, err := meetings.CreateMeeting(ctx, storage.Meeting{
			Title:       req.Title,
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
			Status:      req.Status,
		})
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to create meeting")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, meeting)
	}
}
