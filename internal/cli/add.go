package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/validation"
)

type AddCmd struct {
	Name      string `arg:"" optional:"" help:"Habit name. Prompts when omitted."`
	Frequency string `short:"f" help:"How often the habit repeats (daily|weekly|monthly)." enum:"daily,weekly,monthly" default:"daily"`
}

func (c *AddCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	name := c.Name
	frequency := models.Frequency(c.Frequency)
	if name == "" {
		if err := NewHabitForm(&name, &frequency).Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateName(name); err != nil {
		errors.Report(ctx.out(), errors.NewInputError(name, err))
		return nil
	}

	habits, habit := ctx.Tracker.Create(habits, name, frequency)
	if err := ctx.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Fprintf(ctx.out(), "Added habit: %s\n", FormatHabitLine(len(habits), habit))
	return nil
}

// NewHabitForm prompts for a habit name and frequency
func NewHabitForm(name *string, frequency *models.Frequency) *huh.Form {
	options := make([]huh.Option[models.Frequency], 0, len(models.Frequencies))
	for _, f := range models.Frequencies {
		options = append(options, huh.NewOption(f.String(), f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(name).
				Validate(validation.ValidateName),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(options...).
				Value(frequency),
		),
	)
}
