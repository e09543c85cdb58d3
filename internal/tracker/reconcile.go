package tracker

import (
	"time"

	"github.com/julianstephens/streak/internal/models"
)

// ReconcileHabit brings a habit's completed flag and streak up to date with
// now. LastRecordedAt is never modified.
//
// The completed flag is cleared as soon as now leaves the period of the last
// record. The streak survives one boundary crossing and is only zeroed once
// the last record is older than the immediately preceding period.
func ReconcileHabit(now time.Time, h models.Habit) models.Habit {
	t := h.LastRecordedAt

	switch h.Frequency {
	case models.FrequencyWeekly:
		if !SameISOWeek(t, now) {
			h.Completed = false
		}
		if OlderThanLastFullWeek(t, now) {
			h.Streak = 0
		}

	case models.FrequencyMonthly:
		if !SameMonth(t, now) {
			h.Completed = false
		}
		if OlderThanLastFullMonth(t, now) {
			h.Streak = 0
		}

	default:
		// Already recorded today: nothing to decide.
		if SameDay(t, now) {
			return h
		}
		h.Completed = false
		if !IsYesterday(t, now) {
			h.Streak = 0
		}
	}

	return h
}

// Reconcile applies ReconcileHabit to every habit in place against the same
// now and returns the number of habits that changed.
func Reconcile(now time.Time, habits []models.Habit) int {
	changed := 0
	for i, h := range habits {
		updated := ReconcileHabit(now, h)
		if updated.Completed != h.Completed || updated.Streak != h.Streak {
			changed++
		}
		habits[i] = updated
	}
	return changed
}
