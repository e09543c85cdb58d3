package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streak/internal/models"
	"github.com/julianstephens/streak/internal/validation"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	options := make([]huh.Option[models.Frequency], 0, len(models.Frequencies))
	for _, f := range models.Frequencies {
		options = append(options, huh.NewOption(f.String(), f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(validation.ValidateName),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(options...).
				Value(&fm.Frequency),
		),
	)
}
