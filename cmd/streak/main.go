package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/streak/internal/cli"
	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/storage"
	"github.com/julianstephens/streak/internal/tracker"
	"github.com/julianstephens/streak/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Habit file, SQLite database or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use STREAK_DB_CONNECTION, .pgpass, or the OS keyring instead." type:"string" env:"STREAK_CONFIG" default:"${default_config}"`
	Timezone string `help:"Timezone every period is judged in." env:"STREAK_TIMEZONE" default:"${default_timezone}"`
	Debug    bool   `help:"Enable debug logging to stderr." env:"STREAK_DEBUG"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize streak storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      cli.AddCmd      `cmd:"" help:"Add a new habit."`
	Complete cli.CompleteCmd `cmd:"" aliases:"done" help:"Mark a habit complete for its current period."`
	List     cli.ListCmd     `cmd:"" aliases:"ls" help:"List habits with their streaks."`
	Status   cli.StatusCmd   `cmd:"" help:"Show completion progress for the current periods."`
	Export   cli.ExportCmd   `cmd:"" help:"Export habits as YAML or JSON."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored habits for inconsistencies."`
	Inspect  cli.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
	Keyring  cli.KeyringCmd  `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage habit backups."`
}

// settingsPath locates the optional JSON file supplying flag defaults
func settingsPath() string {
	if path := os.Getenv("STREAK_SETTINGS"); path != "" {
		return path
	}
	return constants.DefaultSettings
}

func logDir(config string) string {
	if storage.IsPostgres(config) {
		return filepath.Dir(kong.ExpandPath(constants.DefaultSettings))
	}
	return filepath.Dir(config)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with daily, weekly and monthly streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, settingsPath()),
		kong.Vars{
			"version":          constants.Version,
			"default_config":   constants.DefaultConfigPath,
			"default_timezone": constants.DefaultTimezone,
		},
	)

	config := CLI.Config
	if !storage.IsPostgres(config) {
		config = kong.ExpandPath(config)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(config)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	clock, err := utils.NewSystemClock(CLI.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	store, err := storage.New(config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(clock),
		Out:     os.Stdout,
	}
	logger.Debug("Session started",
		"session", appCtx.Tracker.SessionID(),
		"command", ctx.Command(),
		"storage", store.GetConfigPath(),
		"timezone", CLI.Timezone,
	)

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
