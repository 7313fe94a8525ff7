// Package store is the persistence collaborator: a JSON snapshot document
// (db.json) per address-book dir, a global JSON config, and an append-only
// mutation event log (jsonl or sqlite backed). The core never reads these
// files itself; it consumes and produces snapshots.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rolo/internal/model"
)

const dbFileName = "db.json"

// DB is the wire snapshot of the whole address book.
type DB struct {
	Version   int             `json:"version"`
	Mode      string          `json:"mode,omitempty"` // persisted selector literal
	People    []model.Person  `json:"people"`
	Companies []model.Company `json:"companies"`
}

// Store locates one address-book directory.
type Store struct {
	Dir string
}

// DefaultDir resolves the book dir: $ROLO_DIR, else the config's bookDir,
// else ~/.rolo/book.
func DefaultDir() (string, error) {
	if v := os.Getenv("ROLO_DIR"); v != "" {
		return v, nil
	}
	if cfg, err := LoadConfig(); err == nil && cfg.BookDir != "" {
		return cfg.BookDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rolo", "book"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Load reads the snapshot, returning an empty DB when none exists yet.
func (s Store) Load() (*DB, error) {
	b, err := os.ReadFile(s.dbPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &DB{Version: 1}, nil
		}
		return nil, err
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.dbPath(), err)
	}
	if db.Version == 0 {
		db.Version = 1
	}
	return &db, nil
}

// Save writes the snapshot atomically (temp file + rename) so a crash never
// leaves a half-written book.
func (s Store) Save(db *DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.dbPath() + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.dbPath())
}

// FindPerson looks up by id first, then by exact name.
func (db *DB) FindPerson(ref string) (*model.Person, bool) {
	for i := range db.People {
		if db.People[i].ID == ref {
			return &db.People[i], true
		}
	}
	for i := range db.People {
		if db.People[i].Name == ref {
			return &db.People[i], true
		}
	}
	return nil, false
}

// FindCompany looks up by id first, then by exact name.
func (db *DB) FindCompany(ref string) (*model.Company, bool) {
	for i := range db.Companies {
		if db.Companies[i].ID == ref {
			return &db.Companies[i], true
		}
	}
	for i := range db.Companies {
		if db.Companies[i].Name == ref {
			return &db.Companies[i], true
		}
	}
	return nil, false
}
