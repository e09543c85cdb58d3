package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/tracker"
)

var (
	// ErrEmptyName is returned for a blank habit name
	ErrEmptyName = errors.New("habit name cannot be empty")
	// ErrReservedCharacter is returned for a name containing the field separator
	ErrReservedCharacter = fmt.Errorf("habit name cannot contain %q", constants.FieldSeparator)
)

// ValidateName checks a user-supplied habit name before it is stored
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.Contains(name, constants.FieldSeparator) {
		return ErrReservedCharacter
	}
	return nil
}

// IssueType represents the kind of problem found in stored habits
type IssueType string

const (
	IssueEmptyName           IssueType = "empty_name"
	IssueReservedCharacter   IssueType = "reserved_character"
	IssueUnknownFrequency    IssueType = "unknown_frequency"
	IssueNegativeStreak      IssueType = "negative_streak"
	IssueFutureTimestamp     IssueType = "future_timestamp"
	IssueStaleCompletion     IssueType = "stale_completion"
	IssueCompletedZeroStreak IssueType = "completed_zero_streak"
)

// Issue represents a detected problem with one habit
type Issue struct {
	Type        IssueType
	Position    int // 1-based
	Name        string
	Description string
}

// ValidationResult contains all detected issues
type ValidationResult struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (vr *ValidationResult) HasIssues() bool {
	return len(vr.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasIssues() {
		return "No issues detected."
	}

	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, issue := range vr.Issues {
		fmt.Fprintf(&b, "- %d: %s\n", issue.Position, issue.Description)
	}
	return b.String()
}

// Validator checks a habit list against the record invariants
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks habits as they would stand at now. Completion flags
// are judged against the current period, so run it on a reconciled list to
// find genuine inconsistencies.
func (v *Validator) ValidateHabits(now time.Time, habits []models.Habit) ValidationResult {
	result := ValidationResult{Issues: []Issue{}}

	add := func(t IssueType, pos int, h models.Habit, format string, args ...interface{}) {
		result.Issues = append(result.Issues, Issue{
			Type:        t,
			Position:    pos,
			Name:        h.Name,
			Description: fmt.Sprintf(format, args...),
		})
	}

	for i, h := range habits {
		pos := i + 1

		switch err := ValidateName(h.Name); {
		case errors.Is(err, ErrEmptyName):
			add(IssueEmptyName, pos, h, "Habit has an empty name")
		case errors.Is(err, ErrReservedCharacter):
			add(IssueReservedCharacter, pos, h, "Habit %q contains the reserved character %q", h.Name, constants.FieldSeparator)
		}

		if !h.Frequency.Valid() {
			add(IssueUnknownFrequency, pos, h, "Habit %q has unknown frequency %q", h.Name, h.Frequency)
		}

		if h.Streak < 0 {
			add(IssueNegativeStreak, pos, h, "Habit %q has negative streak %d", h.Name, h.Streak)
		}

		if h.LastRecordedAt.After(now) {
			add(IssueFutureTimestamp, pos, h, "Habit %q was last recorded in the future (%s)", h.Name, h.LastRecordedAt.Format(time.RFC3339))
		}

		if h.Completed && !inCurrentPeriod(now, h) {
			add(IssueStaleCompletion, pos, h, "Habit %q is marked complete but was last recorded before %s", h.Name, h.Frequency.PeriodLabel())
		}

		if h.Completed && h.Streak == 0 {
			add(IssueCompletedZeroStreak, pos, h, "Habit %q is marked complete with a zero streak", h.Name)
		}
	}

	return result
}

func inCurrentPeriod(now time.Time, h models.Habit) bool {
	switch h.Frequency {
	case models.FrequencyWeekly:
		return tracker.SameISOWeek(h.LastRecordedAt, now)
	case models.FrequencyMonthly:
		return tracker.SameMonth(h.LastRecordedAt, now)
	default:
		return tracker.SameDay(h.LastRecordedAt, now)
	}
}
