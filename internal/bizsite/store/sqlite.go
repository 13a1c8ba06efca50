package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// SQLiteStore implements Store using SQLite. Each website is stored as
// one JSON document.
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithClock sets the clock used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) { s.now = now }
}

// NewSQLiteStore opens or creates the database at dbPath.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// An in-memory database is per connection.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS websites (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		data BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_websites_updated_at ON websites(updated_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts or replaces site and returns the stored copy. The argument
// is not modified.
func (s *SQLiteStore) Save(ctx context.Context, site *model.Website) (*model.Website, error) {
	if site == nil {
		return nil, errors.New("save: nil website")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *site
	now := s.now().UTC()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, fmt.Errorf("marshal website: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO websites (id, business_name, created_at, updated_at, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			business_name = excluded.business_name,
			updated_at = excluded.updated_at,
			data = excluded.data`,
		saved.ID, saved.BusinessName, saved.CreatedAt.UnixNano(), saved.UpdatedAt.UnixNano(), data,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert website: %w", err)
	}
	return &saved, nil
}

// Get loads a website by id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Website, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM websites WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query website: %w", err)
	}

	var site model.Website
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("unmarshal website %s: %w", id, err)
	}
	return &site, nil
}

// List returns all websites, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, business_name, updated_at FROM websites ORDER BY updated_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("query websites: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var updated int64
		if err := rows.Scan(&sum.ID, &sum.BusinessName, &updated); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		sum.UpdatedAt = time.Unix(0, updated).UTC()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Delete removes a website.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM websites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
