package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/streak/internal/models"
)

// ErrNotInitialized is returned when storage is used before `streak init`
var ErrNotInitialized = errors.New("storage not initialized, run 'streak init' first")

// placeholder renders the n-th (1-based) bind parameter
type placeholder func(n int) string

func questionMark(int) string { return "?" }

func dollar(n int) string { return fmt.Sprintf("$%d", n) }

func insertHabitSQL(ph placeholder) string {
	params := make([]string, 6)
	for i := range params {
		params[i] = ph(i + 1)
	}
	return "INSERT INTO habits (position, name, completed, frequency, last_recorded_at, streak) VALUES (" +
		strings.Join(params, ", ") + ")"
}

func loadHabits(db *sql.DB) ([]models.Habit, error) {
	if db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := db.Query(`
		SELECT name, completed, frequency, last_recorded_at, streak
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var frequency, lastRecorded string

		if err := rows.Scan(&h.Name, &h.Completed, &frequency, &lastRecorded, &h.Streak); err != nil {
			return nil, err
		}

		h.Frequency = models.ParseFrequency(frequency)
		h.LastRecordedAt, err = time.Parse(time.RFC3339Nano, lastRecorded)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w %q: %v", h.Name, ErrBadTimestamp, lastRecorded, err)
		}
		if h.Streak < 0 {
			return nil, fmt.Errorf("habit %q: %w %d", h.Name, ErrBadStreak, h.Streak)
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// saveHabits replaces the stored list in a single transaction
func saveHabits(db *sql.DB, habits []models.Habit, ph placeholder) error {
	if db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	stmt, err := tx.Prepare(insertHabitSQL(ph))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range habits {
		_, err := stmt.Exec(
			i+1,
			h.Name,
			h.Completed,
			h.Frequency.String(),
			h.LastRecordedAt.Format(time.RFC3339Nano),
			h.Streak,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save habit %q: %w", h.Name, err)
		}
	}

	return tx.Commit()
}
