package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/streak/internal/models"
)

func TestSQLiteStore_InitSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streak.db")
	store := NewSQLiteStore(path)
	require.NoError(t, store.Init())
	defer store.Close()

	habits, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, habits)

	require.NoError(t, store.Save(sampleHabits()))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	got, err := reopened.Load()
	require.NoError(t, err)
	assertSameHabits(t, sampleHabits(), got)
}

func TestSQLiteStore_SaveReplacesList(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "streak.db"))
	require.NoError(t, store.Init())
	defer store.Close()

	require.NoError(t, store.Save(sampleHabits()))

	reordered := []models.Habit{sampleHabits()[2], sampleHabits()[0]}
	require.NoError(t, store.Save(reordered))

	got, err := store.Load()
	require.NoError(t, err)
	assertSameHabits(t, reordered, got)
}

func TestSQLiteStore_NotInitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "streak.db"))
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSQLiteStore_PendingMigrations(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "streak.db"))
	require.NoError(t, store.Init())
	defer store.Close()

	pending, err := store.PendingMigrations()
	require.NoError(t, err)
	assert.Zero(t, pending)
	assert.NotNil(t, store.GetDB())
}
