package database

import (
	"context"
	"fmt"
	"io/fs"
)

// Transactor runs fn inside a single database transaction. The context passed
// to fn carries the transaction so repositories pick it up transparently.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// RunMigrations executes the named SQL files from fsys in order.
// Every statement in the schema is idempotent, so this is safe on each boot.
func (db *DB) RunMigrations(ctx context.Context, fsys fs.FS, files ...string) error {
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
