package storage

// Weekday labels in board order, Monday first. The labels double as the
// display names on the board, so they stay in Swedish.
var WeekdayOrder = []string{"Mån", "Tis", "Ons", "Tors", "Fre", "Lör", "Sön"}

// Display colors per weekday, used by the frontend cards.
var DayColors = map[string]string{
	"Mån":  "rgba(127, 238, 105, 0.99)",
	"Tis":  "rgb(121, 201, 248)",
	"Ons":  "rgb(255, 255, 255)",
	"Tors": "rgb(201, 147, 100)",
	"Fre":  "rgb(228, 207, 134)",
	"Lör":  "rgb(250, 185, 183)",
	"Sön":  "rgb(243, 122, 122)",
}

type TimeSlot struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type DaySchedule struct {
	ID    string     `json:"id"`
	Day   string     `json:"day"`
	Color string     `json:"color"`
	Times []TimeSlot `json:"times"`
}
