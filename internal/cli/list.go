package cli

import (
	"fmt"
	"io"

	"github.com/julianstephens/streak/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	RenderList(ctx.out(), habits)
	return nil
}

// RenderList prints every habit with its 1-based position
func RenderList(w io.Writer, habits []models.Habit) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one with 'streak add'.")
		return
	}
	for i, h := range habits {
		fmt.Fprintln(w, FormatHabitLine(i+1, h))
	}
}
