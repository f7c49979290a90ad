package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

// OrderRepository is the ledger: append-only within a session, the
// single source of truth for order status.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[string]*domain.Order
	lastID int64
	now    func() time.Time
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]*domain.Order),
		now:  time.Now,
	}
}

// Create assigns a creation-ordered id derived from the creation
// timestamp. Two creations landing in the same millisecond still get
// strictly increasing ids.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := r.now()
	id := created.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	order.ID = strconv.FormatInt(id, 10)
	order.Timestamp = created

	stored := *order
	stored.Items = make([]domain.CartItem, len(order.Items))
	copy(stored.Items, order.Items)

	r.orders = append(r.orders, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, repo.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *OrderRepository) ListByStatuses(ctx context.Context, statuses ...domain.OrderStatus) ([]domain.Order, error) {
	wanted := make(map[domain.OrderStatus]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, order := range r.orders {
		if wanted[order.Status] {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Timestamp.Before(orders[j].Timestamp)
	})
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[orderID]
	if !ok {
		return repo.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (r *OrderRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = nil
	r.byID = make(map[string]*domain.Order)
	return nil
}
