package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

func idExists(db *DB, id string) bool {
	for _, p := range db.People {
		if p.ID == id {
			return true
		}
	}
	for _, c := range db.Companies {
		if c.ID == id {
			return true
		}
		for _, p := range c.People {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}

// NextID mints a fresh unique id with the given prefix ("per" or "com").
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
	// crypto/rand failure or pathological collisions: fall back to counting.
	n := len(db.People) + len(db.Companies) + 1
	for {
		id := fmt.Sprintf("%s-%d", prefix, n)
		if !idExists(db, id) {
			return id
		}
		n++
	}
}
