package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/infrastructure/persistence/sqlite"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, sqlite.InMemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	var applied int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goose_db_version WHERE version_id > 0`).Scan(&applied))
	assert.Equal(t, 2, applied)

	_, err = db.ExecContext(ctx, `SELECT selected_pane, locked_panes FROM layouts LIMIT 1`)
	assert.NoError(t, err)
}
