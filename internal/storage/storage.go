package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/keyring"
	"github.com/julianstephens/streak/internal/logger"
)

// ErrEmbeddedCredentials is returned for connection strings carrying a password
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings with embedded credentials are not allowed")

// IsPostgres reports whether config names a PostgreSQL database
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL URL carries a password
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// RedactConnectionString hides the password of a PostgreSQL URL
func RedactConnectionString(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return connStr
	}
	return u.Redacted()
}

// ResolveConnectionString picks the PostgreSQL connection string to dial.
// Credentials come from the environment or the OS keyring; otherwise the
// configured string is used as-is and libpq falls back to .pgpass.
func ResolveConnectionString(config string) (string, error) {
	if HasEmbeddedCredentials(config) {
		return "", ErrEmbeddedCredentials
	}

	if env := os.Getenv(constants.ConnectionEnvVar); env != "" {
		logger.Debug("Using connection string from environment", "var", constants.ConnectionEnvVar)
		return env, nil
	}

	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		logger.Debug("Using connection string from OS keyring")
		return connStr, nil
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Warn("OS keyring unavailable", "error", err)
	}

	return config, nil
}

// New returns the provider matching the config string: a PostgreSQL URL,
// a .db/.sqlite file, a .json file, or the line-format text file.
func New(config string) (Provider, error) {
	if IsPostgres(config) {
		connStr, err := ResolveConnectionString(config)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(connStr), nil
	}

	if config == "" {
		return nil, fmt.Errorf("no storage path configured")
	}

	switch strings.ToLower(filepath.Ext(config)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(config), nil
	case ".json":
		return NewJSONStore(config), nil
	default:
		return NewTextStore(config), nil
	}
}
