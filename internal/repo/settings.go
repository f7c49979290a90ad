package repo

import (
	"context"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.StoreSettings, error)
	Save(ctx context.Context, settings domain.StoreSettings) error
}
