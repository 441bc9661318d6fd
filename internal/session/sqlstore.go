package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/deepdive/internal/db"
	"github.com/ziadkadry99/deepdive/internal/demo"
)

// SQLStore persists sessions in SQLite so they survive a server restart.
type SQLStore struct {
	db  *db.DB
	ttl time.Duration
}

// NewSQLStore creates a SQLStore. A zero ttl disables expiry.
func NewSQLStore(database *db.DB, ttl time.Duration) *SQLStore {
	return &SQLStore{db: database, ttl: ttl}
}

// Get loads a session by id.
func (s *SQLStore) Get(ctx context.Context, id string) (*State, error) {
	var (
		st                   State
		connected            int
		progress             string
		flash                sql.NullString
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, app, connected, progress, code, flash, created_at, updated_at
		 FROM sessions WHERE id = ?`, id,
	).Scan(&st.ID, &st.App, &connected, &progress, &st.Code, &flash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	st.Demo.Connected = connected != 0
	if err := json.Unmarshal([]byte(progress), &st.Progress); err != nil {
		return nil, fmt.Errorf("decoding progress for session %s: %w", id, err)
	}
	if st.Progress == nil {
		st.Progress = make(map[string]bool)
	}
	if flash.Valid && flash.String != "" {
		var o demo.Outcome
		if err := json.Unmarshal([]byte(flash.String), &o); err != nil {
			return nil, fmt.Errorf("decoding flash for session %s: %w", id, err)
		}
		st.Flash = &o
	}
	st.CreatedAt = parseTime(createdAt)
	st.UpdatedAt = parseTime(updatedAt)

	if s.ttl > 0 && time.Since(st.UpdatedAt) > s.ttl {
		if err := s.Delete(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return &st, nil
}

// Save upserts the session.
func (s *SQLStore) Save(ctx context.Context, st *State) error {
	progress, err := json.Marshal(st.Progress)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	var flash sql.NullString
	if st.Flash != nil {
		b, err := json.Marshal(st.Flash)
		if err != nil {
			return fmt.Errorf("encoding flash: %w", err)
		}
		flash = sql.NullString{String: string(b), Valid: true}
	}

	st.UpdatedAt = time.Now().UTC()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = st.UpdatedAt
	}
	connected := 0
	if st.Demo.Connected {
		connected = 1
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, app, connected, progress, code, flash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   app = excluded.app,
		   connected = excluded.connected,
		   progress = excluded.progress,
		   code = excluded.code,
		   flash = excluded.flash,
		   updated_at = excluded.updated_at`,
		st.ID, st.App, connected, string(progress), st.Code, flash,
		st.CreatedAt.Format(time.RFC3339Nano), st.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving session %s: %w", st.ID, err)
	}
	return nil
}

// Delete removes a session.
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// Count returns the number of stored sessions.
func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n)
	return n, err
}

func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
