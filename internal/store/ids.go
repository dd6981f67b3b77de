package store

import (
	"crypto/rand"
	"encoding/base32"
	"strconv"
	"strings"
	"time"
)

// newRandomID returns prefix-<suffix><ts> where suffix is 8 chars of base32
// (lowercase, no padding; ~40 bits) and ts is the current unix-millis in
// base36. The time tail keeps ids unique across sessions even if the random
// part ever repeats.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + "-" + suffix + ts, nil
}

func idExists(db *DB, id string) bool {
	for _, c := range db.Clients {
		if c.ID == id {
			return true
		}
		for _, td := range c.Todos {
			if td.ID == id {
				return true
			}
		}
	}
	for _, ev := range db.Events {
		if ev.ID == id {
			return true
		}
	}
	return false
}

// NextID generates a fresh id with the given prefix, retrying on the
// (vanishingly unlikely) collision with an existing record.
func (s Store) NextID(db *DB, prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// crypto/rand failure fallback: time-only id, still unique per call site
	// at millisecond resolution.
	return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}
