package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/models"
)

var (
	// ErrFieldCount marks a line that does not split into exactly five fields
	ErrFieldCount = errors.New("wrong field count")
	// ErrBadTimestamp marks a last-recorded field that is not RFC 3339
	ErrBadTimestamp = errors.New("invalid last recorded timestamp")
	// ErrBadStreak marks a streak field that is not a non-negative integer
	ErrBadStreak = errors.New("invalid streak")
)

// FormatLine encodes a habit as name/completed/frequency/last_recorded/streak
func FormatLine(h models.Habit) string {
	last := constants.AbsentTimestamp
	if !h.LastRecordedAt.IsZero() {
		last = h.LastRecordedAt.Format(time.RFC3339Nano)
	}
	return strings.Join([]string{
		h.Name,
		strconv.FormatBool(h.Completed),
		h.Frequency.String(),
		last,
		strconv.Itoa(h.Streak),
	}, constants.FieldSeparator)
}

// ParseLine decodes one stored line. ErrFieldCount means the line should be
// skipped; ErrBadTimestamp and ErrBadStreak are fatal for the load.
func ParseLine(line string) (models.Habit, error) {
	fields := strings.Split(line, constants.FieldSeparator)
	if len(fields) != constants.FieldCount {
		return models.Habit{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	last, err := time.Parse(time.RFC3339Nano, fields[3])
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w %q: %v", ErrBadTimestamp, fields[3], err)
	}

	streak, err := strconv.Atoi(fields[4])
	if err != nil || streak < 0 {
		return models.Habit{}, fmt.Errorf("%w %q", ErrBadStreak, fields[4])
	}

	return models.Habit{
		Name:           fields[0],
		Completed:      strings.TrimSpace(fields[1]) == "true",
		Frequency:      models.ParseFrequency(fields[2]),
		LastRecordedAt: last,
		Streak:         streak,
	}, nil
}
