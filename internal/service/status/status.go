package status

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"oppettider-backend/internal/storage"
)

// Board states.
const (
	Open   = "open"
	Closed = "closed"
	Away   = "away"
)

const minutesPerDay = 24 * 60

// Snapshot is the evaluated board state for one instant.
type Snapshot struct {
	Status      string            `json:"status"`
	CurrentSlot *storage.TimeSlot `json:"currentSlot,omitempty"`
	NextOpening *NextOpening      `json:"nextOpening,omitempty"`
}

type NextOpening struct {
	Day          string `json:"day"`
	Time         string `json:"time"`
	MinutesUntil int    `json:"minutesUntil"`
}

// TimeToMinutes parses "HH:MM" into minutes since midnight.
func TimeToMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as zero-padded "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekdayIndex maps a time.Time onto the board's Monday-first 0..6 index.
func WeekdayIndex(t time.Time) int {
	day := int(t.Weekday()) - 1
	if day == -1 {
		day = 6 // Sunday
	}
	return day
}

// DayLabel returns the Swedish weekday label for t.
func DayLabel(t time.Time) string {
	return storage.WeekdayOrder[WeekdayIndex(t)]
}

// MinutesOfDay returns minutes since midnight for t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func findDay(schedule []storage.DaySchedule, label string) *storage.DaySchedule {
	for i := range schedule {
		if schedule[i].Day == label {
			return &schedule[i]
		}
	}
	return nil
}

// sortedByStart returns the day's slots in chronological order, dropping any
// slot whose start does not parse. Stored order is not trusted.
func sortedByStart(times []storage.TimeSlot) []storage.TimeSlot {
	slots := make([]storage.TimeSlot, 0, len(times))
	for _, slot := range times {
		if _, err := TimeToMinutes(slot.Start); err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.SliceStable(slots, func(i, j int) bool {
		a, _ := TimeToMinutes(slots[i].Start)
		b, _ := TimeToMinutes(slots[j].Start)
		return a < b
	})
	return slots
}

// Evaluate determines the board state at now. Away mode wins over the
// schedule; otherwise the first slot covering now (start inclusive, end
// exclusive) makes the board open. A missing weekday or empty schedule means
// closed.
func Evaluate(now time.Time, schedule []storage.DaySchedule, override storage.Override) Snapshot {
	if override.Active {
		return Snapshot{Status: Away}
	}

	nowMinutes := MinutesOfDay(now)
	if day := findDay(schedule, DayLabel(now)); day != nil {
		for _, slot := range day.Times {
			start, err := TimeToMinutes(slot.Start)
			if err != nil {
				continue
			}
			end, err := TimeToMinutes(slot.End)
			if err != nil {
				continue
			}
			if nowMinutes >= start && nowMinutes < end {
				matched := slot
				return Snapshot{Status: Open, CurrentSlot: &matched}
			}
		}
	}
	return Snapshot{Status: Closed}
}

// FindNextOpening scans forward up to 7 days for the next slot start. Today
// only counts slots that have not started yet; a slot already in progress is
// the open state, not a future opening. The override flag is deliberately
// ignored so staff can see when normal hours resume while away.
func FindNextOpening(now time.Time, schedule []storage.DaySchedule) (NextOpening, bool) {
	nowMinutes := MinutesOfDay(now)

	for offset := 0; offset < 7; offset++ {
		dayDate := now.AddDate(0, 0, offset)
		day := findDay(schedule, DayLabel(dayDate))
		if day == nil {
			continue
		}

		for _, slot := range sortedByStart(day.Times) {
			start, _ := TimeToMinutes(slot.Start)
			if offset == 0 && start <= nowMinutes {
				continue
			}
			return NextOpening{
				Day:          DayLabel(dayDate),
				Time:         slot.Start,
				MinutesUntil: offset*minutesPerDay + (start - nowMinutes),
			}, true
		}
	}
	return NextOpening{}, false
}

// ProgressUntilOpen maps the wait until opening onto 0..100 for the progress
// bar. Waits beyond 12 hours are capped; 100 means opening now.
func ProgressUntilOpen(minutesUntil int) float64 {
	const maxMinutes = 12 * 60
	if minutesUntil < 0 {
		minutesUntil = 0
	}
	if minutesUntil > maxMinutes {
		minutesUntil = maxMinutes
	}
	return 100 - float64(minutesUntil)/float64(maxMinutes)*100
}

// ProgressUntilClose reports how far through the current slot the clock has
// come, 0..100. Handles a slot wrapping midnight and guards the degenerate
// start==end case.
func ProgressUntilClose(nowMinutes int, slot storage.TimeSlot) float64 {
	start, err := TimeToMinutes(slot.Start)
	if err != nil {
		return 0
	}
	end, err := TimeToMinutes(slot.End)
	if err != nil {
		return 0
	}

	length := end - start
	if length < 0 {
		length += minutesPerDay
	}
	if length == 0 {
		return 0
	}

	elapsed := nowMinutes - start
	if elapsed < 0 {
		elapsed += minutesPerDay
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > length {
		elapsed = length
	}
	return float64(elapsed) / float64(length) * 100
}

// FormatWait renders a minute count the way the board displays it, in Swedish.
func FormatWait(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d minuter", mins)
	case hours == 1 && mins == 0:
		return "1 timme"
	case mins == 0:
		return fmt.Sprintf("%d timmar", hours)
	default:
		return fmt.Sprintf("%d timmar och %d minuter", hours, mins)
	}
}
