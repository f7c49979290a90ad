package repo

import (
	"context"
	"errors"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

type MenuRepository interface {
	Get(ctx context.Context) (domain.Menu, error)
	Replace(ctx context.Context, menu domain.Menu) error
	FindItem(ctx context.Context, itemID string) (domain.MenuItem, error)
	Clear(ctx context.Context) error
}
