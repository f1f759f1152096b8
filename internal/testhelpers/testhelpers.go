package testhelpers

import (
	"context"
	"testing"

	"github.com/example/adisyon/internal/db"
	"github.com/example/adisyon/internal/migrate"
)

// NewTestDB returns a migrated in-memory SQLite handle that is closed when
// the test completes.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	ctx := context.Background()
	d, err := db.Open(ctx, db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(d.Close)

	if err := migrate.Up(ctx, d); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return d
}
