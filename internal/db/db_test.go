package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	cases := []struct {
		driver, url string
		want        Dialect
	}{
		{"", "postgres://u:p@localhost:5432/pos", Postgres},
		{"", "postgresql://localhost/pos", Postgres},
		{"", "file:adisyon.db", SQLite},
		{"", ":memory:", SQLite},
		{"pgx", "host=localhost dbname=pos", Postgres},
		{"", "host=localhost dbname=pos user=adisyon", Postgres},
		{"", "dbname=pos", Postgres},
		{"", "file:adisyon.db?_pragma=busy_timeout(5000)", SQLite},
		{"", "/var/lib/adisyon/host=1.db", SQLite},
		{"sqlite3", "postgres://ignored", SQLite},
	}
	for _, c := range cases {
		got, err := DialectFor(c.driver, c.url)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s %s", c.driver, c.url)
	}

	_, err := DialectFor("mysql", "")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "SELECT 1", Rebind("SELECT 1"))
	assert.Equal(t, "INSERT INTO t (a,b) VALUES (?1,?2)", Rebind("INSERT INTO t (a,b) VALUES ($1,$2)"))
}

func TestSQLiteExecQuery(t *testing.T) {
	ctx := context.Background()
	d, err := Open(ctx, SQLite, ":memory:")
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Ping(ctx))
	assert.Equal(t, SQLite, d.Dialect())

	_, err = d.Exec(ctx, `CREATE TABLE kv (k TEXT PRIMARY KEY, v INTEGER)`)
	require.NoError(t, err)

	n, err := d.Exec(ctx, `INSERT INTO kv (k, v) VALUES ($1,$2) ON CONFLICT (k) DO NOTHING`, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = d.Exec(ctx, `INSERT INTO kv (k, v) VALUES ($1,$2) ON CONFLICT (k) DO NOTHING`, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	var v int
	require.NoError(t, d.QueryRow(ctx, `SELECT v FROM kv WHERE k=$1`, "a").Scan(&v))
	assert.Equal(t, 1, v)

	err = d.QueryRow(ctx, `SELECT v FROM kv WHERE k=$1`, "missing").Scan(&v)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, WrapNotFound(err), ErrNotFound)

	rows, err := d.Query(ctx, `SELECT k FROM kv`)
	require.NoError(t, err)
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"a"}, keys)
}
