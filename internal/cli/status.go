package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/tracker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	RenderStatus(ctx.out(), habits)
	return nil
}

// RenderStatus prints each habit's completion mark followed by a progress summary
func RenderStatus(w io.Writer, habits []models.Habit) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one with 'streak add'.")
		return
	}

	fmt.Fprintln(w, headerStyle.Render("Habits"))
	for i, h := range habits {
		if h.Completed {
			fmt.Fprintln(w, doneStyle.Render("[x] "+FormatHabitLine(i+1, h)))
		} else {
			fmt.Fprintln(w, pendingStyle.Render("[ ] "+FormatHabitLine(i+1, h)))
		}
	}

	progress := tracker.Summarize(habits)
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Progress"))
	fmt.Fprintf(w, "Overall: %d/%d (%d%%)\n", progress.Completed, progress.Total, progress.Percent())
	for _, f := range models.Frequencies {
		fp, ok := progress.ByFrequency[f]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-8s %d/%d done %s\n", f, fp.Completed, fp.Total, f.PeriodLabel())
	}
	if progress.LongestStreak > 0 {
		fmt.Fprintf(w, "Longest streak: %s (%d🔥)\n", progress.LongestHabit, progress.LongestStreak)
	}
}
