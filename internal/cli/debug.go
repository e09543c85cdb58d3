package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/streak/internal/models"
)

type DebugCmd struct {
	StorePath DebugStorePathCmd `cmd:"" help:"Show storage location."`
	Dump      DebugDumpCmd      `cmd:"" help:"Dump stored habits as JSON without reconciling."`
	Reconcile DebugReconcileCmd `cmd:"" help:"Show what a reconciliation pass would change without saving."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"session": ctx.Tracker.SessionID(),
	}
	return printJSON(ctx, output)
}

type DebugDumpCmd struct{}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return printJSON(ctx, habits)
}

type DebugReconcileCmd struct{}

type reconcileChange struct {
	Position        int    `json:"position"`
	Name            string `json:"name"`
	CompletedBefore bool   `json:"completed_before"`
	CompletedAfter  bool   `json:"completed_after"`
	StreakBefore    int    `json:"streak_before"`
	StreakAfter     int    `json:"streak_after"`
}

func (cmd *DebugReconcileCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.Load()
	if err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	before := make([]models.Habit, len(habits))
	copy(before, habits)
	ctx.Tracker.Reconcile(habits)

	changes := []reconcileChange{}
	for i := range habits {
		if before[i].Completed == habits[i].Completed && before[i].Streak == habits[i].Streak {
			continue
		}
		changes = append(changes, reconcileChange{
			Position:        i + 1,
			Name:            habits[i].Name,
			CompletedBefore: before[i].Completed,
			CompletedAfter:  habits[i].Completed,
			StreakBefore:    before[i].Streak,
			StreakAfter:     habits[i].Streak,
		})
	}

	return printJSON(ctx, map[string]interface{}{
		"now":     ctx.Tracker.Now().Format(time.RFC3339),
		"changes": changes,
	})
}

func printJSON(ctx *Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}

