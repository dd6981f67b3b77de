package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"marlow-cli/internal/model"
	"marlow-cli/internal/schedule"
)

// Logical persistence keys. Each collection (and scalar) is stored under its
// own key so a write touches only the affected document.
const (
	keyClients = "clients"
	keyEvents  = "events"
	keyActive  = "active_client"
	keyLogo    = "logo"
)

// DB is the in-memory state snapshot. Collections are insertion-ordered
// slices; order is display stability only and carries no other meaning.
type DB struct {
	Clients []model.Client `json:"clients"`
	Events  []model.Event  `json:"events"`

	// ActiveClientID references an existing client whenever Clients is
	// non-empty (repaired at load and after deletes).
	ActiveClientID string `json:"activeClientId,omitempty"`

	// Logo is an opaque data-URI string, or empty when unset.
	Logo string `json:"logo,omitempty"`
}

// Store reads and writes a DB under Dir. The backend (JSON files or SQLite)
// is chosen per environment; both speak the same key -> JSON document
// contract, so state moves between them freely.
type Store struct {
	Dir string
}

const storeDirName = ".marlow"

// DiscoverDir walks up from start looking for an existing .marlow directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, storeDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store directory: MARLOW_DIR, an existing .marlow
// up the tree, else ./.marlow.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("MARLOW_DIR")); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, storeDirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load reads all keys into a DB snapshot. A missing or malformed document
// never fails the load; the affected key falls back to its empty default.
// The returned snapshot always satisfies the collection invariants (see
// repair.go).
func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b := s.backend()

	db := &DB{Clients: []model.Client{}, Events: []model.Event{}}
	loadKey(b, keyClients, &db.Clients)
	loadKey(b, keyEvents, &db.Events)
	loadKey(b, keyActive, &db.ActiveClientID)
	loadKey(b, keyLogo, &db.Logo)

	if db.Clients == nil {
		db.Clients = []model.Client{}
	}
	if db.Events == nil {
		db.Events = []model.Event{}
	}
	Repair(db)
	return db, nil
}

// Save persists the full snapshot, one document per key. Persistence is
// best-effort: write failures are swallowed and the in-memory state stays
// authoritative for the session.
func (s Store) Save(db *DB) {
	if db == nil {
		return
	}
	if err := s.Ensure(); err != nil {
		return
	}
	b := s.backend()
	saveKey(b, keyClients, db.Clients)
	saveKey(b, keyEvents, db.Events)
	saveKey(b, keyActive, db.ActiveClientID)
	saveKey(b, keyLogo, db.Logo)
}

// loadKey unmarshals the stored document for key into v, leaving v untouched
// (the caller's default) when the key is missing or the document is corrupt.
func loadKey(b backend, key string, v any) {
	data, err := b.read(key)
	if err != nil || len(data) == 0 {
		return
	}
	// Corrupt data is discarded, not surfaced: a localized document loss
	// must never take the whole store down.
	_ = json.Unmarshal(data, v)
}

func saveKey(b backend, key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	_ = b.write(key, data)
}

func (db *DB) FindClient(id string) (*model.Client, bool) {
	for i := range db.Clients {
		if db.Clients[i].ID == id {
			return &db.Clients[i], true
		}
	}
	return nil, false
}

func (db *DB) FindEvent(id string) (*model.Event, bool) {
	for i := range db.Events {
		if db.Events[i].ID == id {
			return &db.Events[i], true
		}
	}
	return nil, false
}

// EventsForClient returns the events referencing clientID, in insertion order.
func (db *DB) EventsForClient(clientID string) []model.Event {
	var out []model.Event
	for _, ev := range db.Events {
		if ev.ClientID == clientID {
			out = append(out, ev)
		}
	}
	return out
}

// Repair enforces the collection invariants once, at the boundary where a
// snapshot is loaded or a referenced entity is deleted:
//   - every client has a non-nil todos list and a palette color
//   - events with malformed dates are dropped
//   - ActiveClientID references an existing client (first client wins when
//     the stored reference is dangling)
func Repair(db *DB) {
	for i := range db.Clients {
		c := &db.Clients[i]
		if c.Todos == nil {
			c.Todos = []model.Todo{}
		}
		if !model.ValidColor(c.Color) {
			c.Color = model.Palette[0]
		}
		if _, ok := model.ParseClientStatus(string(c.Status)); !ok {
			c.Status = model.ClientStatusScheduling
		}
	}

	kept := db.Events[:0]
	for _, ev := range db.Events {
		if schedule.ValidDate(ev.Date) {
			kept = append(kept, ev)
		}
	}
	db.Events = kept

	if len(db.Clients) == 0 {
		db.ActiveClientID = ""
		return
	}
	if _, ok := db.FindClient(db.ActiveClientID); !ok {
		db.ActiveClientID = db.Clients[0].ID
	}
}
