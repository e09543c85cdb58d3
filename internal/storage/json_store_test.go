package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/streak/internal/models"
)

func TestJSONStore_InitSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Init())
	habits, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, habits)

	require.NoError(t, store.Save(sampleHabits()))
	got, err := NewJSONStore(path).Load()
	require.NoError(t, err)
	assertSameHabits(t, sampleHabits(), got)
}

func TestJSONStore_NotInitialized(t *testing.T) {
	_, err := NewJSONStore(filepath.Join(t.TempDir(), "habits.json")).Load()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestJSONStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, habits []models.Habit)
	}{
		{
			name:    "unknown frequency defaults to daily",
			content: `{"version":1,"habits":[{"name":"Read","completed":false,"frequency":"fortnightly","last_recorded_at":"2024-03-15T09:30:00Z","streak":1}]}`,
			check: func(t *testing.T, habits []models.Habit) {
				require.Len(t, habits, 1)
				assert.Equal(t, models.FrequencyDaily, habits[0].Frequency)
			},
		},
		{
			name:    "missing timestamp",
			content: `{"version":1,"habits":[{"name":"Read","completed":false,"frequency":"daily","streak":1}]}`,
			wantErr: ErrBadTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "habits.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			habits, err := NewJSONStore(path).Load()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, habits)
		})
	}
}

func TestJSONStore_NewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"habits":[]}`), 0600))

	_, err := NewJSONStore(path).Load()
	assert.ErrorContains(t, err, "newer than supported")
}
