package repo

import (
	"context"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type CartRepository interface {
	Get(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	AddItem(ctx context.Context, sessionID string, item domain.MenuItem) error
	RemoveItem(ctx context.Context, sessionID string, itemID string) error
	Clear(ctx context.Context, sessionID string) error
	ClearAll(ctx context.Context) error
}
