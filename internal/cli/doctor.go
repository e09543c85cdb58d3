package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/streak/internal/backup"
	"github.com/julianstephens/streak/internal/keyring"
	"github.com/julianstephens/streak/internal/storage"
	"github.com/julianstephens/streak/internal/utils"
	"github.com/julianstephens/streak/internal/validation"
)

// migrationChecker is implemented by the SQL-backed stores
type migrationChecker interface {
	PendingMigrations() (int, error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	report := func(name string, err error, warnOnly bool) {
		switch {
		case err == nil:
			fmt.Fprintf(out, "✓ %s: OK\n", name)
		case warnOnly:
			fmt.Fprintf(out, "⚠ %s: WARNING\n", name)
			fmt.Fprintf(out, "   %v\n", err)
		default:
			fmt.Fprintf(out, "❌ %s: FAIL\n", name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		}
	}

	// Check 1: storage reachable
	storageErr := checkStorageReachable(ctx)
	report("Storage reachable", storageErr, false)

	// Check 2: migrations complete (SQL stores only)
	report("Migrations complete", checkMigrationsComplete(ctx), false)

	// Check 3: backups present (warning only)
	report("Backups present", checkBackupsPresent(ctx), true)

	// Check 4: stored habits are consistent
	if storageErr == nil {
		report("Data validation", checkValidation(ctx), false)
	} else {
		fmt.Fprintf(out, "⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 5: credentials source for PostgreSQL
	if storage.IsPostgres(ctx.Store.GetConfigPath()) {
		report("OS keyring", checkKeyring(), true)
	}

	// Check 6: clock/timezone sanity
	report("Clock/timezone", checkClockTimezone(ctx, out), false)

	// Check 7: no other streak process sharing the store
	report("Single instance", checkSingleInstance(), true)

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if _, err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkMigrationsComplete(ctx *Context) error {
	checker, ok := ctx.Store.(migrationChecker)
	if !ok {
		// File stores have no schema
		return nil
	}

	pending, err := checker.PendingMigrations()
	if err != nil {
		return fmt.Errorf("failed to check schema version: %w", err)
	}
	if pending > 0 {
		return fmt.Errorf("migrations incomplete: %d pending", pending)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if storage.IsPostgres(ctx.Store.GetConfigPath()) {
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'streak backup create'")
	}

	return nil
}

// checkValidation judges a reconciled copy so stale completion flags from an
// earlier session are not reported
func checkValidation(ctx *Context) error {
	habits, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	ctx.Tracker.Reconcile(habits)

	result := validation.New().ValidateHabits(now, habits)
	if result.HasIssues() {
		return fmt.Errorf("%d issue(s) found, run 'streak validate' for details", len(result.Issues))
	}
	return nil
}

func checkKeyring() error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkClockTimezone(ctx *Context, out io.Writer) error {
	now := ctx.Tracker.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	loc := now.Location().String()
	if !utils.ValidateTimezone(loc) {
		return fmt.Errorf("timezone %q is not a loadable IANA zone", loc)
	}

	fmt.Fprintf(out, "   Note: periods are judged in %s\n", loc)
	return nil
}

func checkSingleInstance() error {
	pids, err := OtherInstances()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}
	if len(pids) > 0 {
		return fmt.Errorf("other streak processes are running (pids %v); writes are not coordinated", pids)
	}
	return nil
}
