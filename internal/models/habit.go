package models

import (
	"time"
)

// Frequency is the calendar period a habit is tracked over
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists every frequency in menu order
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// ParseFrequency maps stored text to a Frequency. Unknown text falls back to daily.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case FrequencyWeekly:
		return FrequencyWeekly
	case FrequencyMonthly:
		return FrequencyMonthly
	default:
		return FrequencyDaily
	}
}

// Valid reports whether f is one of the known frequencies
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// PeriodLabel names the current period for user-facing messages
func (f Frequency) PeriodLabel() string {
	switch f {
	case FrequencyWeekly:
		return "this week"
	case FrequencyMonthly:
		return "this month"
	default:
		return "this day"
	}
}

func (f Frequency) String() string {
	return string(f)
}

// Habit represents a recurring practice to track
type Habit struct {
	Name           string    `json:"name" yaml:"name"`
	Completed      bool      `json:"completed" yaml:"completed"`
	Frequency      Frequency `json:"frequency" yaml:"frequency"`
	LastRecordedAt time.Time `json:"last_recorded_at" yaml:"last_recorded_at"`
	Streak         int       `json:"streak" yaml:"streak"`
}

// NewHabit returns a never-completed habit recorded at now
func NewHabit(name string, frequency Frequency, now time.Time) Habit {
	return Habit{
		Name:           name,
		Completed:      false,
		Frequency:      frequency,
		LastRecordedAt: now,
		Streak:         0,
	}
}
