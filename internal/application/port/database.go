// Package port defines the contracts between the pane use cases and their
// hosts or infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database connection, opening it on
// first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
