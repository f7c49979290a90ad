package memory

import (
	"context"
	"sync"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.StoreSettings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		settings: domain.DefaultSettings(),
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.StoreSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.StoreSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	return nil
}
