package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julianstephens/streak/internal/backup"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/storage"
	"github.com/julianstephens/streak/internal/tracker"
)

// ErrInvalidSelection is returned when a selection is not a number
var ErrInvalidSelection = stderrors.New("invalid selection")

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Out     io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if storage.IsPostgres(c.Store.GetConfigPath()) {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// LoadHabits starts a session: it loads the stored list, runs one
// reconciliation pass and persists the result before any other operation.
func (c *Context) LoadHabits() ([]models.Habit, error) {
	habits, err := c.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	c.Tracker.Reconcile(habits)
	if err := c.SaveHabits(habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// SaveHabits persists the whole list
func (c *Context) SaveHabits(habits []models.Habit) error {
	warnConcurrentInstances()
	if err := c.Store.Save(habits); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	return nil
}

// ParseSelection converts a 1-based position typed by the user. The result
// is within [1, count].
func ParseSelection(input string, count int) (int, error) {
	trimmed := strings.TrimSpace(input)
	position, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.NewInputError(trimmed, ErrInvalidSelection)
	}
	if position < 1 || position > count {
		return 0, errors.NewInputError(trimmed, tracker.ErrSelectionOutOfRange)
	}
	return position, nil
}

// FormatHabitLine renders one habit the way `streak list` prints it
func FormatHabitLine(position int, h models.Habit) string {
	return fmt.Sprintf("%d: %s - %s   %d🔥", position, h.Name, h.Frequency, h.Streak)
}
