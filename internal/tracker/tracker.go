package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/utils"
)

// ErrSelectionOutOfRange is returned when a 1-based position does not name a habit
var ErrSelectionOutOfRange = errors.New("selection out of range")

// Tracker applies period rules to habits against a single reference clock
type Tracker struct {
	clock     utils.Clock
	sessionID string
	log       *log.Logger
}

// New creates a tracker with a fresh session ID. Log lines carry the session
// when the global logger is initialized before the tracker.
func New(clock utils.Clock) *Tracker {
	sessionID := uuid.New().String()
	return &Tracker{
		clock:     clock,
		sessionID: sessionID,
		log:       logger.With("session", sessionID),
	}
}

// Now reads the reference clock
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

// SessionID identifies this tracker's session in logs
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// Reconcile runs one reconciliation pass over habits in place. The clock is
// read once so every habit is judged against the same instant.
func (t *Tracker) Reconcile(habits []models.Habit) int {
	now := t.clock.Now()
	changed := Reconcile(now, habits)
	t.debug("Reconciled habits",
		"now", now.Format(time.RFC3339),
		"habits", len(habits),
		"changed", changed,
	)
	return changed
}

// CompletionResult describes the outcome of marking a habit complete
type CompletionResult struct {
	Position         int
	Habit            models.Habit
	AlreadyCompleted bool
	Period           string
}

func (r CompletionResult) String() string {
	if r.AlreadyCompleted {
		return fmt.Sprintf("You already completed this one for %s", r.Period)
	}
	return fmt.Sprintf("Marked %q complete (streak %d)", r.Habit.Name, r.Habit.Streak)
}

// Complete marks the habit at the 1-based position complete. A habit already
// completed for its current period is left untouched. habits must have been
// reconciled in this session.
func (t *Tracker) Complete(habits []models.Habit, position int) (CompletionResult, error) {
	if position < 1 || position > len(habits) {
		return CompletionResult{}, fmt.Errorf("%w: %d (have %d habits)", ErrSelectionOutOfRange, position, len(habits))
	}

	h := &habits[position-1]
	result := CompletionResult{
		Position: position,
		Period:   h.Frequency.PeriodLabel(),
	}

	if h.Completed {
		result.AlreadyCompleted = true
		result.Habit = *h
		t.info("Habit already completed", "habit", h.Name, "period", result.Period)
		return result, nil
	}

	h.Completed = true
	h.Streak++
	h.LastRecordedAt = t.clock.Now()
	result.Habit = *h

	t.info("Habit completed", "habit", h.Name, "streak", h.Streak)
	return result, nil
}

// Create appends a new habit recorded at the current instant
func (t *Tracker) Create(habits []models.Habit, name string, frequency models.Frequency) ([]models.Habit, models.Habit) {
	habit := models.NewHabit(name, frequency, t.clock.Now())
	t.info("Habit created", "habit", name, "frequency", frequency)
	return append(habits, habit), habit
}

func (t *Tracker) debug(msg string, keyvals ...interface{}) {
	if t.log != nil {
		t.log.Debug(msg, keyvals...)
	}
}

func (t *Tracker) info(msg string, keyvals ...interface{}) {
	if t.log != nil {
		t.log.Info(msg, keyvals...)
	}
}
