// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/halmaawali/rollbook/internal/models"
	"github.com/halmaawali/rollbook/internal/storage"
)

// Keys of the four persisted collections.
const (
	keyMembers  = "members"
	keyGroups   = "groups"
	keySessions = "sessions"
	keySettings = "settings"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using a SQLite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// getValue reads one raw collection value. ok is false when the key is
// absent or the read failed; read failures are logged, never returned.
func (s *SQLiteStore) getValue(ctx context.Context, key string) (value []byte, ok bool) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		slog.Warn("storage read failed, falling back to defaults", "key", key, "error", err)
		return nil, false
	}
	return []byte(raw), true
}

// setValue upserts one raw collection value.
func (s *SQLiteStore) setValue(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// saveJSON encodes v and upserts it under key.
func (s *SQLiteStore) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.setValue(ctx, key, data)
}

// GetMembers returns the stored roster, or an empty slice on any failure.
func (s *SQLiteStore) GetMembers(ctx context.Context) []models.Member {
	raw, ok := s.getValue(ctx, keyMembers)
	if !ok {
		return []models.Member{}
	}
	var members []models.Member
	if err := json.Unmarshal(raw, &members); err != nil {
		slog.Warn("corrupt members data, falling back to empty roster", "error", err)
		return []models.Member{}
	}
	return members
}

// SaveMembers overwrites the stored roster.
func (s *SQLiteStore) SaveMembers(ctx context.Context, members []models.Member) error {
	return s.saveJSON(ctx, keyMembers, members)
}

// GetGroups returns the stored groups, or an empty slice on any failure.
func (s *SQLiteStore) GetGroups(ctx context.Context) []models.Group {
	raw, ok := s.getValue(ctx, keyGroups)
	if !ok {
		return []models.Group{}
	}
	var groups []models.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		slog.Warn("corrupt groups data, falling back to empty list", "error", err)
		return []models.Group{}
	}
	return groups
}

// SaveGroups overwrites the stored groups.
func (s *SQLiteStore) SaveGroups(ctx context.Context, groups []models.Group) error {
	return s.saveJSON(ctx, keyGroups, groups)
}

// GetSessions returns the stored sessions, or an empty slice on any failure.
func (s *SQLiteStore) GetSessions(ctx context.Context) []models.MeetingSession {
	raw, ok := s.getValue(ctx, keySessions)
	if !ok {
		return []models.MeetingSession{}
	}
	var sessions []models.MeetingSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		slog.Warn("corrupt sessions data, falling back to empty list", "error", err)
		return []models.MeetingSession{}
	}
	return sessions
}

// SaveSessions overwrites the stored sessions.
func (s *SQLiteStore) SaveSessions(ctx context.Context, sessions []models.MeetingSession) error {
	return s.saveJSON(ctx, keySessions, sessions)
}

// GetSettings returns the settings singleton. Fields missing from storage
// keep their default value: the stored JSON is decoded over a defaults
// object, which is the shallow-merge the settings contract requires.
func (s *SQLiteStore) GetSettings(ctx context.Context) models.AppSettings {
	settings := models.DefaultSettings()
	raw, ok := s.getValue(ctx, keySettings)
	if !ok {
		return settings
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		slog.Warn("corrupt settings data, falling back to defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings overwrites the settings singleton.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	return s.saveJSON(ctx, keySettings, settings)
}

// ClearAllData removes all four collections.
func (s *SQLiteStore) ClearAllData(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM app_state WHERE key IN (?, ?, ?, ?)",
		keyMembers, keyGroups, keySessions, keySettings,
	)
	if err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
