package memory

import (
	"context"
	"sync"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

// CartRepository keeps one cart per customer session, preserving the
// order items were first added in.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string][]domain.CartItem),
	}
}

func (r *CartRepository) Get(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := r.carts[sessionID]
	items := make([]domain.CartItem, len(cart))
	copy(items, cart)
	return items, nil
}

func (r *CartRepository) AddItem(ctx context.Context, sessionID string, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[sessionID]
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity++
			return nil
		}
	}
	r.carts[sessionID] = append(cart, domain.CartItem{MenuItem: item, Quantity: 1})
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, sessionID string, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[sessionID]
	for i := range cart {
		if cart[i].ID != itemID {
			continue
		}
		if cart[i].Quantity > 1 {
			cart[i].Quantity--
		} else {
			// removing the last unit removes the line entirely
			r.carts[sessionID] = append(cart[:i], cart[i+1:]...)
		}
		return nil
	}
	return repo.ErrItemNotFound
}

func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

func (r *CartRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = make(map[string][]domain.CartItem)
	return nil
}
