package cli

import (
	"fmt"

	"github.com/julianstephens/streak/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.out(), "Validating habits...")
	result := validation.New().ValidateHabits(ctx.Tracker.Now(), habits)

	fmt.Fprintln(ctx.out())
	fmt.Fprintln(ctx.out(), result.FormatReport())

	return nil
}
