package constants

const (
	AppName            = "streak"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/streak/habit.txt"
	DefaultSettings    = "~/.config/streak/config.json"
	DefaultTimezone    = "UTC"
	Version            = "v0.3.0"

	// ConnectionEnvVar holds a PostgreSQL connection string, including credentials.
	ConnectionEnvVar = "STREAK_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// FieldSeparator splits the five fields of a stored habit line
	FieldSeparator = "/"
	// FieldCount is the number of fields in a well-formed habit line
	FieldCount = 5
	// AbsentTimestamp marks a missing last-recorded instant in the line format
	AbsentTimestamp = "N/A"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "streak-"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "streak.log"
)
