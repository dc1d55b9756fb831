package storage

// Meeting statuses.
const (
	MeetingScheduled = "scheduled"
	MeetingCompleted = "completed"
	MeetingCancelled = "cancelled"
)

func ValidMeetingStatus(status string) bool {
	return status == MeetingScheduled || status == MeetingCompleted || status == MeetingCancelled
}

type Meeting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Description string `json:"description"`
	Status      string `json:"status"`
}
