package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Store backend selection.
//
// Default: one JSON file per key (clients.json, events.json, ...).
// Opt-in: set MARLOW_STORE=sqlite to keep all keys in marlow.sqlite.
const envStoreBackend = "MARLOW_STORE"

type Backend string

const (
	BackendFiles  Backend = "files"
	BackendSQLite Backend = "sqlite"
)

// backend speaks the raw persistence contract: a key maps to one JSON
// document. read returns os.ErrNotExist (or any error) for absent keys;
// callers treat every failure as "use the default".
type backend interface {
	read(key string) ([]byte, error)
	write(key string, data []byte) error
}

// StoreBackend reports which backend the environment selects.
func StoreBackend() Backend {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envStoreBackend))) {
	case string(BackendSQLite):
		return BackendSQLite
	default:
		return BackendFiles
	}
}

func (s Store) backend() backend {
	if StoreBackend() == BackendSQLite {
		return sqliteBackend{path: filepath.Join(s.Dir, sqliteFileName)}
	}
	return fileBackend{dir: s.Dir}
}

// fileBackend stores each key as <dir>/<key>.json, written tmp+rename so a
// crash mid-write never leaves a truncated document behind.
type fileBackend struct {
	dir string
}

func (b fileBackend) keyPath(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b fileBackend) read(key string) ([]byte, error) {
	return os.ReadFile(b.keyPath(key))
}

func (b fileBackend) write(key string, data []byte) error {
	path := b.keyPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
