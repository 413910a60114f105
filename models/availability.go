package models

import (
	"fmt"
	"time"
)

// SlotWindow is a bookable window within a day, in "HH:MM" wall-clock time.
type SlotWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// StartClock parses the window's start time into hour and minute.
func (w SlotWindow) StartClock() (hour, min int, err error) {
	if _, err := fmt.Sscanf(w.Start, "%d:%d", &hour, &min); err != nil {
		return 0, 0, fmt.Errorf("invalid slot start %q: %w", w.Start, err)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("invalid slot start %q: out of range", w.Start)
	}
	return hour, min, nil
}

// DayAvailability is one weekday's entry in the recurring template. Slots on a
// day marked unavailable are ignored entirely.
type DayAvailability struct {
	Available bool         `bson:"available" json:"available"`
	Slots     []SlotWindow `bson:"slots" json:"slots"`
}

// WeeklyAvailability maps a weekday (0=Sunday .. 6=Saturday) to its template
// entry. It is a recurring weekly pattern, not tied to calendar dates.
type WeeklyAvailability map[time.Weekday]DayAvailability

// Commitment is an accepted future booking that blocks a maid's availability.
type Commitment struct {
	MaidID          string    `bson:"maidId" json:"maidId"`
	ScheduledDate   time.Time `bson:"scheduledDate" json:"scheduledDate"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
}
