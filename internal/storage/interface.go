package storage

import "github.com/julianstephens/streak/internal/models"

// Provider loads and persists the whole ordered habit list. Position in the
// list is display order and the user-facing identifier.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Habits
	Load() ([]models.Habit, error)
	Save([]models.Habit) error

	// Utils
	GetConfigPath() string
}
