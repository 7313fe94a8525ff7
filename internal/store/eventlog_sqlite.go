package store

import (
	"database/sql"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, indexFileName)
}

func (s Store) openSQLite() (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness with concurrent CLI invocations.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, err
		}
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS events (
    id        TEXT PRIMARY KEY,
    ts        TEXT NOT NULL,
    type      TEXT NOT NULL,
    entity_id TEXT NOT NULL,
    payload   TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
`); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) appendEventSQLite(ev Event) error {
	db, err := s.openSQLite()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO events (id, ts, type, entity_id, payload) VALUES (?, ?, ?, ?, ?)`,
		ev.ID, ev.TS.Format(time.RFC3339Nano), ev.Type, ev.EntityID, string(ev.Payload),
	)
	return err
}

func (s Store) listEventsSQLite() ([]Event, error) {
	db, err := s.openSQLite()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, ts, type, entity_id, payload FROM events ORDER BY ts, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		var ts, payload string
		if err := rows.Scan(&ev.ID, &ts, &ev.Type, &ev.EntityID, &payload); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, err
		}
		ev.TS = t
		if payload != "" {
			ev.Payload = []byte(payload)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
