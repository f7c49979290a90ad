package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

type MenuRepository struct {
	mu   sync.RWMutex
	menu domain.Menu
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) Get(ctx context.Context) (domain.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menu := make(domain.Menu, len(r.menu))
	copy(menu, r.menu)
	return menu, nil
}

func (r *MenuRepository) Replace(ctx context.Context, menu domain.Menu) error {
	seen := make(map[string]bool, len(menu))
	for _, category := range menu {
		if seen[category.Name] {
			return fmt.Errorf("duplicate category %q in menu snapshot", category.Name)
		}
		seen[category.Name] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.menu = menu
	return nil
}

func (r *MenuRepository) FindItem(ctx context.Context, itemID string) (domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.menu.FindItem(itemID)
	if !ok {
		return domain.MenuItem{}, repo.ErrItemNotFound
	}
	return item, nil
}

func (r *MenuRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.menu = nil
	return nil
}
