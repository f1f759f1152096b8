package migrate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/adisyon/internal/db"
)

func TestUpIsRepeatable(t *testing.T) {
	ctx := context.Background()
	d, err := db.Open(ctx, db.SQLite, ":memory:")
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, Up(ctx, d))
	require.NoError(t, Up(ctx, d))

	var n int
	require.NoError(t, d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	for _, table := range []string{"sections", "tables", "users", "categories", "products", "chef_category_permissions"} {
		var c int
		require.NoError(t, d.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&c), table)
		assert.Zero(t, c, table)
	}
}

func TestEveryDialectHasMigrations(t *testing.T) {
	for _, dir := range []string{string(db.Postgres), string(db.SQLite)} {
		entries, err := fs.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
