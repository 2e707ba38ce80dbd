// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/halmaawali/rollbook/internal/models"
)

// Store defines the interface for the four persisted collections.
// This abstraction allows swapping storage backends without changing the
// service layer.
//
// Getters never fail the caller: when the underlying storage is missing,
// corrupted or unreadable, they return the empty collection (or default
// settings) instead of an error. Writers overwrite the whole collection;
// callers are responsible for read-modify-write sequencing.
type Store interface {
	// GetMembers returns the full roster, or an empty slice when nothing
	// usable is stored.
	GetMembers(ctx context.Context) []models.Member

	// SaveMembers overwrites the stored roster.
	SaveMembers(ctx context.Context, members []models.Member) error

	// GetGroups returns all groups in stored (creation) order.
	GetGroups(ctx context.Context) []models.Group

	// SaveGroups overwrites the stored groups.
	SaveGroups(ctx context.Context, groups []models.Group) error

	// GetSessions returns all saved attendance sessions.
	GetSessions(ctx context.Context) []models.MeetingSession

	// SaveSessions overwrites the stored sessions.
	SaveSessions(ctx context.Context, sessions []models.MeetingSession) error

	// GetSettings returns the settings singleton, with defaults filled in
	// for any field missing from storage.
	GetSettings(ctx context.Context) models.AppSettings

	// SaveSettings overwrites the settings singleton.
	SaveSettings(ctx context.Context, settings models.AppSettings) error

	// ClearAllData removes all four collections.
	ClearAllData(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
