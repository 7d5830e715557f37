// Package cache is the durable local booking store, backed by SQLite. It
// holds drafts, finalized bookings and the current/pending reference markers;
// every write is flushed before the call returns.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"ceremonia/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	event_id   TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS bookings (
	reference  TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS markers (
	name      TEXT PRIMARY KEY,
	reference TEXT NOT NULL
);`

const (
	markerCurrent = "current"
	markerPending = "pending-sync"
)

type Store struct {
	db *sql.DB
}

// Open opens the cache file, creating the schema if needed. A single
// connection serializes the write-through path and keeps ":memory:" databases
// coherent.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveDraft(ctx context.Context, d *domain.BookingDraft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	query := `INSERT INTO drafts (event_id, payload, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(event_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, d.Event.EventID, payload, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}

	return nil
}

func (s *Store) Draft(ctx context.Context, eventID string) (*domain.BookingDraft, error) {
	var payload []byte
	query := `SELECT payload FROM drafts WHERE event_id = ?`
	if err := s.db.QueryRowContext(ctx, query, eventID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var d domain.BookingDraft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}

	return &d, nil
}

func (s *Store) RemoveDraft(ctx context.Context, eventID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE event_id = ?`, eventID); err != nil {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}

func (s *Store) SaveBooking(ctx context.Context, b *domain.PersistedBooking) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	query := `INSERT INTO bookings (reference, payload, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(reference) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, b.BookingReference, payload, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}

	return nil
}

func (s *Store) Booking(ctx context.Context, reference string) (*domain.PersistedBooking, error) {
	var payload []byte
	query := `SELECT payload FROM bookings WHERE reference = ?`
	if err := s.db.QueryRowContext(ctx, query, reference).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.PersistedBooking
	if err := json.Unmarshal(payload, &b); err != nil {
		return nil, fmt.Errorf("unmarshal booking: %w", err)
	}

	return &b, nil
}

func (s *Store) SetCurrentRef(ctx context.Context, reference string) error {
	return s.setMarker(ctx, markerCurrent, reference)
}

func (s *Store) CurrentRef(ctx context.Context) (string, error) {
	return s.marker(ctx, markerCurrent)
}

func (s *Store) SetPendingRef(ctx context.Context, reference string) error {
	return s.setMarker(ctx, markerPending, reference)
}

func (s *Store) PendingRef(ctx context.Context) (string, error) {
	return s.marker(ctx, markerPending)
}

func (s *Store) ClearPendingRef(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM markers WHERE name = ?`, markerPending); err != nil {
		return fmt.Errorf("clear pending marker: %w", err)
	}
	return nil
}

func (s *Store) setMarker(ctx context.Context, name, reference string) error {
	query := `INSERT INTO markers (name, reference) VALUES (?, ?)
			  ON CONFLICT(name) DO UPDATE SET reference = excluded.reference`
	if _, err := s.db.ExecContext(ctx, query, name, reference); err != nil {
		return fmt.Errorf("set %s marker: %w", name, err)
	}
	return nil
}

func (s *Store) marker(ctx context.Context, name string) (string, error) {
	var reference string
	err := s.db.QueryRowContext(ctx, `SELECT reference FROM markers WHERE name = ?`, name).Scan(&reference)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s marker: %w", name, err)
	}
	return reference, nil
}
