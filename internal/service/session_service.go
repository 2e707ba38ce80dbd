package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/halmaawali/rollbook/internal/models"
	"github.com/halmaawali/rollbook/internal/storage"
)

// SessionService records and browses attendance sessions. Sessions are
// immutable once saved; the only mutation is whole-session deletion.
type SessionService struct {
	mu    sync.Mutex
	store storage.Store
}

// NewSessionService creates a SessionService with the given storage backend.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// RecordSession saves one attendance round as a full unit. Every record
// must carry a valid status, and a member may appear at most once;
// duplicates are rejected here rather than silently merged, so data that
// reaches storage through this path is unambiguous. Duplicates arriving
// through a backup import are still tolerated by all readers.
func (s *SessionService) RecordSession(ctx context.Context, date models.Date, topic string, records []models.AttendanceRecord) (models.MeetingSession, error) {
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		if !record.Status.Valid() {
			return models.MeetingSession{}, fmt.Errorf("%w: %q", ErrInvalidStatus, record.Status)
		}
		if seen[record.MemberID] {
			return models.MeetingSession{}, fmt.Errorf("%w: %s", ErrDuplicateRecord, record.MemberID)
		}
		seen[record.MemberID] = true
	}

	session := models.MeetingSession{
		ID:      uuid.New().String(),
		Date:    date,
		Topic:   topic,
		Records: records,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := append(s.store.GetSessions(ctx), session)
	if err := s.store.SaveSessions(ctx, sessions); err != nil {
		return models.MeetingSession{}, fmt.Errorf("failed to save sessions: %w", err)
	}

	slog.Info("session recorded",
		"session_id", session.ID,
		"date", session.Date.String(),
		"records", len(records),
	)
	return session, nil
}

// DeleteSession removes one session by id.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.store.GetSessions(ctx)
	kept := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	if len(kept) == len(sessions) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err := s.store.SaveSessions(ctx, kept); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}

	slog.Info("session deleted", "session_id", id)
	return nil
}

// Sessions returns all saved sessions in stored order.
func (s *SessionService) Sessions(ctx context.Context) []models.MeetingSession {
	return s.store.GetSessions(ctx)
}

// Session returns one session by id.
func (s *SessionService) Session(ctx context.Context, id string) (models.MeetingSession, error) {
	for _, session := range s.store.GetSessions(ctx) {
		if session.ID == id {
			return session, nil
		}
	}
	return models.MeetingSession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
}
