package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/models"
)

type CompleteCmd struct {
	Selection string `arg:"" optional:"" help:"Position of the habit in 'streak list'. Prompts when omitted."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Fprintln(ctx.out(), "No habits yet. Add one with 'streak add'.")
		return nil
	}

	selection := c.Selection
	if selection == "" {
		var position int
		if err := newSelectForm(habits, &position).Run(); err != nil {
			return err
		}
		selection = strconv.Itoa(position)
	}

	position, err := ParseSelection(selection, len(habits))
	if err != nil {
		errors.Report(ctx.out(), err)
		return nil
	}

	result, err := ctx.Tracker.Complete(habits, position)
	if err != nil {
		return err
	}

	if !result.AlreadyCompleted {
		if err := ctx.SaveHabits(habits); err != nil {
			return err
		}
	}

	fmt.Fprintln(ctx.out(), result.String())
	return nil
}

func newSelectForm(habits []models.Habit, position *int) *huh.Form {
	options := make([]huh.Option[int], 0, len(habits))
	for i, h := range habits {
		options = append(options, huh.NewOption(FormatHabitLine(i+1, h), i+1))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which habit did you complete?").
				Options(options...).
				Value(position),
		),
	)
}
