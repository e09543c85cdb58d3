package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/streak/internal/models"
)

type ExportCmd struct {
	Format string `short:"F" help:"Output format (yaml|json)." enum:"yaml,json" default:"yaml"`
	Output string `short:"o" help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	habits, err := ctx.LoadHabits()
	if err != nil {
		return err
	}

	w := ctx.out()
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return Export(w, c.Format, habits)
}

// Export writes habits in the named format
func Export(w io.Writer, format string, habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(habits)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(habits); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
