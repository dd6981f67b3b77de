package store

import (
	"context"
	"database/sql"
	"errors"
	"os"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "marlow.sqlite"

// sqliteBackend keeps every key in a single kv table. The value column holds
// the same JSON document the file backend writes, so switching backends (or
// copying state between them) needs no migration.
type sqliteBackend struct {
	path string
}

func (b sqliteBackend) open(ctx context.Context) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness with a concurrent TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (b sqliteBackend) read(key string) ([]byte, error) {
	ctx := context.Background()
	db, err := b.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var value string
	err = db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (b sqliteBackend) write(key string, data []byte) error {
	ctx := context.Background()
	db, err := b.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv(key, value) VALUES(?, ?)`, key, string(data))
	return err
}
