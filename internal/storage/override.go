package storage

// DefaultOverrideMessage seeds the singleton override row on first access.
const DefaultOverrideMessage = "Strax tillbaka"

// Override is the singleton away-mode record. When Active is true the board
// shows BORTA regardless of the schedule.
type Override struct {
	Active  bool   `json:"manualOverride"`
	Message string `json:"message"`
}
