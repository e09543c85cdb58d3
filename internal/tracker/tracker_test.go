package tracker

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/utils"
)

// countingClock moves forward a second on every read
type countingClock struct {
	now   time.Time
	reads int
}

func (c *countingClock) Now() time.Time {
	c.reads++
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func TestCreate(t *testing.T) {
	t0 := date(2025, 6, 11, 9, 0)
	tr := New(utils.NewFixedClock(t0))

	habits, created := tr.Create(nil, "Stretch", models.FrequencyWeekly)

	require.Len(t, habits, 1)
	assert.Equal(t, created, habits[0])
	assert.Equal(t, "Stretch", created.Name)
	assert.False(t, created.Completed)
	assert.Zero(t, created.Streak)
	assert.True(t, created.LastRecordedAt.Equal(t0))
	assert.NotEmpty(t, tr.SessionID())
}

func TestComplete(t *testing.T) {
	t0 := date(2025, 6, 11, 9, 0)
	clock := utils.NewFixedClock(t0)
	tr := New(clock)

	habits, _ := tr.Create(nil, "Read", models.FrequencyDaily)
	clock.Advance(2 * time.Hour)

	result, err := tr.Complete(habits, 1)
	require.NoError(t, err)

	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, 1, result.Position)
	assert.True(t, habits[0].Completed)
	assert.Equal(t, 1, habits[0].Streak)
	assert.True(t, habits[0].LastRecordedAt.Equal(clock.Now()))
	assert.Equal(t, habits[0], result.Habit)
}

func TestCompleteIsIdempotent(t *testing.T) {
	t0 := date(2025, 6, 11, 9, 0)
	clock := utils.NewFixedClock(t0)
	tr := New(clock)

	habits := []models.Habit{habit(models.FrequencyWeekly, t0, true, 3)}
	clock.Advance(time.Hour)

	result, err := tr.Complete(habits, 1)
	require.NoError(t, err)

	assert.True(t, result.AlreadyCompleted)
	assert.Equal(t, "this week", result.Period)
	assert.Equal(t, "You already completed this one for this week", result.String())
	assert.Equal(t, 3, habits[0].Streak)
	assert.True(t, habits[0].LastRecordedAt.Equal(t0))
}

func TestCompleteOutOfRange(t *testing.T) {
	tr := New(utils.NewFixedClock(date(2025, 6, 11, 9, 0)))
	habits := []models.Habit{habit(models.FrequencyDaily, date(2025, 6, 10, 9, 0), false, 1)}
	before := habits[0]

	for _, pos := range []int{0, -1, 2} {
		_, err := tr.Complete(habits, pos)
		assert.True(t, errors.Is(err, ErrSelectionOutOfRange), "position %d: got %v", pos, err)
	}
	assert.Equal(t, before, habits[0], "no mutation on bad selection")
}

func TestReconcileReadsClockOnce(t *testing.T) {
	// One second before midnight: a second read would land on the next day.
	clock := &countingClock{now: date(2025, 6, 11, 23, 59).Add(59 * time.Second)}
	tr := New(clock)

	recorded := date(2025, 6, 11, 8, 0)
	habits := []models.Habit{
		habit(models.FrequencyDaily, recorded, true, 2),
		habit(models.FrequencyDaily, recorded, true, 4),
		habit(models.FrequencyDaily, recorded, true, 6),
	}

	changed := tr.Reconcile(habits)

	assert.Equal(t, 1, clock.reads)
	assert.Zero(t, changed)
	for i, h := range habits {
		assert.True(t, h.Completed, "habit %d judged against a later instant", i)
	}
}

func TestTrackerLogsSessionID(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	t.Cleanup(func() { logger.Logger = prev })

	tr := New(utils.NewFixedClock(date(2025, 6, 11, 9, 0)))
	habits, _ := tr.Create(nil, "Read", models.FrequencyDaily)
	tr.Reconcile(habits)

	out := buf.String()
	assert.Contains(t, out, "Habit created")
	assert.Contains(t, out, "Reconciled habits")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("session="+tr.SessionID())))
}

func TestTrackerWithoutLogger(t *testing.T) {
	prev := logger.Logger
	logger.Logger = nil
	t.Cleanup(func() { logger.Logger = prev })

	tr := New(utils.NewFixedClock(date(2025, 6, 11, 9, 0)))
	habits, _ := tr.Create(nil, "Read", models.FrequencyDaily)
	assert.NotPanics(t, func() { tr.Reconcile(habits) })
}

func TestDailyLifecycle(t *testing.T) {
	t0 := date(2025, 6, 11, 9, 0)
	clock := utils.NewFixedClock(t0)
	tr := New(clock)

	habits, _ := tr.Create(nil, "Meditate", models.FrequencyDaily)
	tr.Reconcile(habits)

	_, err := tr.Complete(habits, 1)
	require.NoError(t, err)
	require.Equal(t, 1, habits[0].Streak)

	// Next day: flag cleared, streak kept.
	clock.AdvanceDays(1)
	tr.Reconcile(habits)
	assert.False(t, habits[0].Completed)
	assert.Equal(t, 1, habits[0].Streak)

	_, err = tr.Complete(habits, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, habits[0].Streak)

	// Two days later without completing: streak lost.
	clock.AdvanceDays(2)
	tr.Reconcile(habits)
	assert.False(t, habits[0].Completed)
	assert.Equal(t, 0, habits[0].Streak)
}

func TestWeeklyLifecycle(t *testing.T) {
	clock := utils.NewFixedClock(date(2025, 6, 2, 18, 0)) // Monday
	tr := New(clock)

	habits, _ := tr.Create(nil, "Long run", models.FrequencyWeekly)
	_, err := tr.Complete(habits, 1)
	require.NoError(t, err)

	// Later the same week a second completion is refused.
	clock.AdvanceDays(4)
	tr.Reconcile(habits)
	result, err := tr.Complete(habits, 1)
	require.NoError(t, err)
	assert.True(t, result.AlreadyCompleted)
	assert.Equal(t, 1, habits[0].Streak)

	// Sunday of the following week: still inside the grace window.
	clock.AdvanceDays(9) // Sun 15 June
	tr.Reconcile(habits)
	assert.False(t, habits[0].Completed)
	assert.Equal(t, 1, habits[0].Streak)

	// Monday 16 June: last record (Mon 2 June) is before Mon 9 June.
	clock.AdvanceDays(1)
	tr.Reconcile(habits)
	assert.Equal(t, 0, habits[0].Streak)
}

func TestSummarize(t *testing.T) {
	now := date(2025, 6, 11, 9, 0)
	habits := []models.Habit{
		{Name: "a", Frequency: models.FrequencyDaily, Completed: true, Streak: 3, LastRecordedAt: now},
		{Name: "b", Frequency: models.FrequencyDaily, Completed: false, Streak: 8, LastRecordedAt: now},
		{Name: "c", Frequency: models.FrequencyMonthly, Completed: true, Streak: 1, LastRecordedAt: now},
	}

	p := Summarize(habits)

	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 66, p.Percent())
	assert.Equal(t, FrequencyProgress{Total: 2, Completed: 1}, p.ByFrequency[models.FrequencyDaily])
	assert.Equal(t, FrequencyProgress{Total: 1, Completed: 1}, p.ByFrequency[models.FrequencyMonthly])
	assert.Equal(t, 8, p.LongestStreak)
	assert.Equal(t, "b", p.LongestHabit)

	assert.Zero(t, Summarize(nil).Percent())
}
