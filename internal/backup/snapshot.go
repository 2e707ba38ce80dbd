// Package backup serializes the full store into a versioned snapshot and
// merges imported snapshots back, section by section.
//
// The snapshot is self-describing: each collection is an independently
// optional section, so a "1.0" file written before groups existed imports
// cleanly and simply leaves the current groups alone. The codec performs
// no referential validation across sections; dangling ids are tolerated by
// every reader instead.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/halmaawali/rollbook/internal/models"
	"github.com/halmaawali/rollbook/internal/storage"
)

// Version identifies the current snapshot shape. "1.0" predates groups.
const Version = "1.1"

// Snapshot is the exported backup file format.
type Snapshot struct {
	Version   string                  `json:"version"`
	Timestamp string                  `json:"timestamp"`
	Members   []models.Member         `json:"members"`
	Groups    []models.Group          `json:"groups"`
	Sessions  []models.MeetingSession `json:"sessions"`
	Settings  models.AppSettings      `json:"settings"`
}

// Export captures the current store contents. It reads through the store
// at call time and caches nothing.
func Export(ctx context.Context, store storage.Store) Snapshot {
	return Snapshot{
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Members:   store.GetMembers(ctx),
		Groups:    store.GetGroups(ctx),
		Sessions:  store.GetSessions(ctx),
		Settings:  store.GetSettings(ctx),
	}
}

// Encode renders the snapshot as indented JSON, the on-disk file format.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Filename derives the conventional backup file name for a given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("rollbook_backup_%s.json", now.Format("2006-01-02"))
}

// Import validates raw snapshot bytes and applies them to the store.
//
// Each collection section is applied only when present with the expected
// shape; sections that are absent or mis-shaped leave the existing data
// untouched. A failure mid-way returns false without rolling back the
// sections already applied; the format is non-transactional.
func Import(ctx context.Context, store storage.Store, raw []byte) bool {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		slog.Warn("backup import rejected: not a JSON object", "error", err)
		return false
	}
	// "null" unmarshals into a nil map without error.
	if envelope == nil {
		slog.Warn("backup import rejected: not a JSON object")
		return false
	}

	if section, ok := envelope["members"]; ok && isArray(section) {
		var members []models.Member
		if err := json.Unmarshal(section, &members); err != nil {
			slog.Warn("backup import failed: bad members section", "error", err)
			return false
		}
		if err := store.SaveMembers(ctx, members); err != nil {
			slog.Warn("backup import failed: saving members", "error", err)
			return false
		}
	}

	if section, ok := envelope["groups"]; ok && isArray(section) {
		var groups []models.Group
		if err := json.Unmarshal(section, &groups); err != nil {
			slog.Warn("backup import failed: bad groups section", "error", err)
			return false
		}
		if err := store.SaveGroups(ctx, groups); err != nil {
			slog.Warn("backup import failed: saving groups", "error", err)
			return false
		}
	}

	if section, ok := envelope["sessions"]; ok && isArray(section) {
		var sessions []models.MeetingSession
		if err := json.Unmarshal(section, &sessions); err != nil {
			slog.Warn("backup import failed: bad sessions section", "error", err)
			return false
		}
		if err := store.SaveSessions(ctx, sessions); err != nil {
			slog.Warn("backup import failed: saving sessions", "error", err)
			return false
		}
	}

	if section, ok := envelope["settings"]; ok && isObject(section) {
		var settings models.AppSettings
		if err := json.Unmarshal(section, &settings); err != nil {
			slog.Warn("backup import failed: bad settings section", "error", err)
			return false
		}
		// Saving re-encodes every field, so fields the snapshot omitted
		// must be backfilled here or they would persist as empty.
		if err := store.SaveSettings(ctx, settings.WithDefaults()); err != nil {
			slog.Warn("backup import failed: saving settings", "error", err)
			return false
		}
	}

	return true
}

func isArray(raw json.RawMessage) bool {
	return firstByte(raw) == '['
}

func isObject(raw json.RawMessage) bool {
	return firstByte(raw) == '{'
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
