package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/streak/internal/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain", "Read", nil},
		{"spaces inside", "Read 20 pages", nil},
		{"empty", "", ErrEmptyName},
		{"blank", "   ", ErrEmptyName},
		{"separator", "Read/Write", ErrReservedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHabits_Clean(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{Name: "Read", Completed: true, Frequency: models.FrequencyDaily, LastRecordedAt: now.Add(-time.Hour), Streak: 3},
		{Name: "Gym", Completed: true, Frequency: models.FrequencyWeekly, LastRecordedAt: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), Streak: 1},
		{Name: "Budget", Completed: false, Frequency: models.FrequencyMonthly, LastRecordedAt: time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC), Streak: 0},
	}

	result := New().ValidateHabits(now, habits)
	if result.HasIssues() {
		t.Errorf("expected no issues, got: %s", result.FormatReport())
	}
	if result.FormatReport() != "No issues detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}

func TestValidateHabits_Issues(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		habit models.Habit
		want  IssueType
	}{
		{"empty name", models.Habit{Name: "", Frequency: models.FrequencyDaily, LastRecordedAt: now}, IssueEmptyName},
		{"separator", models.Habit{Name: "a/b", Frequency: models.FrequencyDaily, LastRecordedAt: now}, IssueReservedCharacter},
		{"unknown frequency", models.Habit{Name: "Read", Frequency: "hourly", LastRecordedAt: now}, IssueUnknownFrequency},
		{"negative streak", models.Habit{Name: "Read", Frequency: models.FrequencyDaily, LastRecordedAt: now, Streak: -2}, IssueNegativeStreak},
		{"future", models.Habit{Name: "Read", Frequency: models.FrequencyDaily, LastRecordedAt: now.AddDate(0, 0, 2)}, IssueFutureTimestamp},
		{"stale daily", models.Habit{Name: "Read", Completed: true, Frequency: models.FrequencyDaily, LastRecordedAt: now.AddDate(0, 0, -1), Streak: 1}, IssueStaleCompletion},
		{"stale weekly", models.Habit{Name: "Gym", Completed: true, Frequency: models.FrequencyWeekly, LastRecordedAt: now.AddDate(0, 0, -7), Streak: 1}, IssueStaleCompletion},
		{"completed without streak", models.Habit{Name: "Read", Completed: true, Frequency: models.FrequencyDaily, LastRecordedAt: now}, IssueCompletedZeroStreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().ValidateHabits(now, []models.Habit{tt.habit})
			found := false
			for _, issue := range result.Issues {
				if issue.Type == tt.want {
					found = true
					if issue.Position != 1 {
						t.Errorf("expected position 1, got %d", issue.Position)
					}
				}
			}
			if !found {
				t.Errorf("expected issue %s, got: %s", tt.want, result.FormatReport())
			}
			if !strings.HasPrefix(result.FormatReport(), "Issues detected:") {
				t.Errorf("unexpected report header: %q", result.FormatReport())
			}
		})
	}
}
