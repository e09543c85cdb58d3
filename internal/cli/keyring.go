package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/julianstephens/streak/internal/keyring"
	"github.com/julianstephens/streak/internal/storage"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Show whether a connection string is stored."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string, including credentials."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if !storage.IsPostgres(c.ConnectionString) {
		return fmt.Errorf("not a PostgreSQL connection string")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "✓ Stored connection string for %s\n", storage.RedactConnectionString(c.ConnectionString))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteConnectionString()
	if stderrors.Is(err, keyring.ErrNotFound) {
		fmt.Fprintln(ctx.out(), "No connection string stored.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.out(), "✓ Connection string removed")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Fprintf(ctx.out(), "Stored: %s\n", storage.RedactConnectionString(connStr))
	case stderrors.Is(err, keyring.ErrNotFound):
		fmt.Fprintln(ctx.out(), "No connection string stored.")
	default:
		return err
	}
	return nil
}
