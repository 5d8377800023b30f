package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// settingsService is the concrete implementation of SettingsService. Settings
// are loaded per request; there is no process-wide cache.
type settingsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

func newSettingsService(repos *repository.Repositories, log zerolog.Logger) *settingsService {
	return &settingsService{
		repos: repos,
		log:   log.With().Str("service", "settings").Logger(),
		now:   time.Now,
	}
}

// Get returns the stored site settings, or the defaults when none have been
// saved yet. Never returns nil on success.
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// AddOrUpdate stamps the modification time and upserts the settings record.
func (s *settingsService) AddOrUpdate(ctx context.Context, settings *models.Settings) error {
	if settings.ID == "" {
		existing, err := s.repos.Settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if existing != nil {
			settings.ID = existing.ID
		} else {
			settings.ID = uuid.NewString()
		}
	}

	settings.LastModifiedDate = s.now()

	if err := s.repos.Settings.AddOrUpdate(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.log.Info().Str("settings_id", settings.ID).Msg("Settings saved")
	return nil
}
