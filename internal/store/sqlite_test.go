package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreBackendSelection(t *testing.T) {
	t.Setenv(envStoreBackend, "")
	if StoreBackend() != BackendFiles {
		t.Fatalf("expected files backend by default")
	}
	t.Setenv(envStoreBackend, "sqlite")
	if StoreBackend() != BackendSQLite {
		t.Fatalf("expected sqlite backend")
	}
	t.Setenv(envStoreBackend, " SQLite ")
	if StoreBackend() != BackendSQLite {
		t.Fatalf("backend selection should be case-insensitive")
	}
	t.Setenv(envStoreBackend, "bogus")
	if StoreBackend() != BackendFiles {
		t.Fatalf("unknown value should fall back to files")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Setenv(envStoreBackend, "sqlite")

	dir := t.TempDir()
	s := Store{Dir: dir}
	s.Save(sampleDB())

	if _, err := os.Stat(filepath.Join(dir, sqliteFileName)); err != nil {
		t.Fatalf("expected %s to exist: %v", sqliteFileName, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "clients.json")); !os.IsNotExist(err) {
		t.Fatalf("sqlite backend must not write json files")
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Clients) != 1 || got.Clients[0].Name != "Acme" {
		t.Fatalf("clients did not round-trip: %+v", got.Clients)
	}
	if len(got.Events) != 1 || got.Events[0].ID != "evt-bbbb" {
		t.Fatalf("events did not round-trip: %+v", got.Events)
	}
	if got.ActiveClientID != "client-aaaa" {
		t.Fatalf("active client did not round-trip: %q", got.ActiveClientID)
	}
}

func TestSQLiteMissingKey(t *testing.T) {
	b := sqliteBackend{path: filepath.Join(t.TempDir(), sqliteFileName)}
	if _, err := b.read("clients"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist for missing key; got %v", err)
	}
}

func TestSQLiteOverwrite(t *testing.T) {
	b := sqliteBackend{path: filepath.Join(t.TempDir(), sqliteFileName)}
	if err := b.write("logo", []byte(`"one"`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := b.write("logo", []byte(`"two"`)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	data, err := b.read("logo")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `"two"` {
		t.Fatalf("expected latest value; got %s", data)
	}
}
