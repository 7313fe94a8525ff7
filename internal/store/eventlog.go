package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one audit-log line for a mutation. The log is append-only and is
// never replayed into state; db.json stays the source of truth.
type Event struct {
	ID       string          `json:"id"`
	TS       time.Time       `json:"ts"`
	Type     string          `json:"type"` // e.g. "person.add", "company.delete"
	EntityID string          `json:"entityId"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	eventsFileName = "events.jsonl"
	indexFileName  = "index.sqlite"
)

// eventBackend resolves which log backend to use: explicit ROLO_EVENTLOG
// ("jsonl" or "sqlite") wins, otherwise whichever file already exists,
// defaulting to jsonl.
func (s Store) eventBackend() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ROLO_EVENTLOG"))) {
	case "jsonl":
		return "jsonl"
	case "sqlite":
		return "sqlite"
	}
	if _, err := os.Stat(filepath.Join(s.Dir, indexFileName)); err == nil {
		return "sqlite"
	}
	return "jsonl"
}

// AppendEvent records a mutation in the active backend.
func (s Store) AppendEvent(typ, entityID string, payload any) error {
	typ = strings.TrimSpace(typ)
	entityID = strings.TrimSpace(entityID)
	if typ == "" {
		return fmt.Errorf("event: missing type")
	}
	if entityID == "" {
		return fmt.Errorf("event: missing entity id")
	}

	pb, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	ev := Event{
		ID:       uuid.NewString(),
		TS:       time.Now().UTC(),
		Type:     typ,
		EntityID: entityID,
		Payload:  pb,
	}

	if s.eventBackend() == "sqlite" {
		return s.appendEventSQLite(ev)
	}
	return s.appendEventJSONL(ev)
}

// ListEvents returns all recorded events, oldest first.
func (s Store) ListEvents() ([]Event, error) {
	if s.eventBackend() == "sqlite" {
		return s.listEventsSQLite()
	}
	return s.listEventsJSONL()
}

func (s Store) eventsPath() string {
	return filepath.Join(s.Dir, eventsFileName)
}

func (s Store) appendEventJSONL(ev Event) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.eventsPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Sync()
}

func (s Store) listEventsJSONL() ([]Event, error) {
	f, err := os.Open(s.eventsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.eventsPath(), line, err)
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
