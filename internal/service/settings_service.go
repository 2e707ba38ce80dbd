package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/halmaawali/rollbook/internal/models"
	"github.com/halmaawali/rollbook/internal/storage"
)

// SettingsService reads and writes the troop settings singleton.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the settings with defaults backfilled.
func (s *SettingsService) Get(ctx context.Context) models.AppSettings {
	return s.store.GetSettings(ctx)
}

// Save overwrites the settings singleton. The troop and leader names are
// required; the remaining fields may be blank.
func (s *SettingsService) Save(ctx context.Context, settings models.AppSettings) error {
	if strings.TrimSpace(settings.TroopName) == "" || strings.TrimSpace(settings.LeaderName) == "" {
		return ErrEmptyName
	}
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	slog.Info("settings saved", "troop", settings.TroopName)
	return nil
}
