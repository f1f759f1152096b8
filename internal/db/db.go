package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DialectFor infers the backend from the URL when driver is empty: a
// postgres:// URL or a keyword DSN ("host=... dbname=...") is Postgres,
// anything else a SQLite path or file: URI.
func DialectFor(driver, databaseURL string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return Postgres, nil
	}
	if isKeywordDSN(databaseURL) {
		return Postgres, nil
	}
	return SQLite, nil
}

var dsnKeywords = []string{"host", "hostaddr", "dbname", "user", "port", "sslmode"}

func isKeywordDSN(s string) bool {
	for _, f := range strings.Fields(s) {
		k, _, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		for _, kw := range dsnKeywords {
			if k == kw {
				return true
			}
		}
	}
	return false
}

// DB is the single store handle shared by every phase of a run. Exactly one
// of pool and sqlDB is set.
type DB struct {
	dialect Dialect
	pool    *pgxpool.Pool
	sqlDB   *sql.DB
}

func Open(ctx context.Context, dialect Dialect, databaseURL string) (*DB, error) {
	switch dialect {
	case Postgres:
		return openPostgres(ctx, databaseURL)
	case SQLite:
		return openSQLite(ctx, databaseURL)
	}
	return nil, fmt.Errorf("unsupported dialect %q", dialect)
}

func openPostgres(ctx context.Context, databaseURL string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnLifetime = 5 * time.Minute
	cfg.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &DB{dialect: Postgres, pool: pool}, nil
}

func openSQLite(ctx context.Context, dsn string) (*DB, error) {
	s, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// :memory: databases live and die with their connection.
	s.SetMaxOpenConns(1)

	for _, p := range []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := s.ExecContext(ctx, p); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	return &DB{dialect: SQLite, sqlDB: s}, nil
}

func (d *DB) Dialect() Dialect { return d.dialect }

func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
		return
	}
	_ = d.sqlDB.Close()
}

func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	return d.sqlDB.PingContext(ctx)
}

// Exec runs a statement and reports the number of affected rows.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d.pool != nil {
		tag, err := d.pool.Exec(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}
	res, err := d.sqlDB.ExecContext(ctx, Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) Row {
	if d.pool != nil {
		return d.pool.QueryRow(ctx, query, args...)
	}
	return d.sqlDB.QueryRowContext(ctx, Rebind(query), args...)
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if d.pool != nil {
		return d.pool.Query(ctx, query, args...)
	}
	rows, err := d.sqlDB.QueryContext(ctx, Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type sqlRows struct{ *sql.Rows }

func (r sqlRows) Close() { _ = r.Rows.Close() }

// Rebind rewrites $N placeholders into SQLite's ?N form. Statements must not
// contain a literal '$'.
func Rebind(query string) string {
	if !strings.Contains(query, "$") {
		return query
	}
	return strings.ReplaceAll(query, "$", "?")
}

var ErrNotFound = errors.New("not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func WrapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) {
		return ErrNotFound
	}
	return fmt.Errorf("db: %w", err)
}
