package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type SettingsService struct {
	settingsRepo repo.SettingsRepository
	logger       *zap.SugaredLogger
}

func NewSettingsService(settingsRepo repo.SettingsRepository, logger *zap.SugaredLogger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (s *SettingsService) Get(ctx context.Context) (domain.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return domain.StoreSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Save replaces the whole settings object. Empty credentials fall back
// to the defaults so the admin can never lock themselves out.
func (s *SettingsService) Save(ctx context.Context, settings domain.StoreSettings) error {
	defaults := domain.DefaultSettings()
	if settings.Username == "" {
		settings.Username = defaults.Username
	}
	if settings.Password == "" {
		settings.Password = defaults.Password
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Infow("settings saved", "store_name", settings.StoreName,
		"sheet_sync", settings.EnableSheetSync, "email_notify", settings.EnableEmailNotify, "line_notify", settings.EnableLineNotify)
	return nil
}

// Authenticate is a plain equality gate for the admin panel, not a
// trust boundary.
func (s *SettingsService) Authenticate(ctx context.Context, username, password string) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if username != settings.Username || password != settings.Password {
		return ErrInvalidCredentials
	}
	return nil
}
