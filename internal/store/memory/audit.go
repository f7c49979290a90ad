package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type OrderStatusAuditRepository struct {
	mu     sync.RWMutex
	audits []domain.OrderStatusAudit
}

func NewOrderStatusAuditRepository() *OrderStatusAuditRepository {
	return &OrderStatusAuditRepository{}
}

func (r *OrderStatusAuditRepository) Create(ctx context.Context, audit *domain.OrderStatusAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}
	r.audits = append(r.audits, *audit)
	return nil
}

// GetByOrderID returns audit records for one order, newest first.
func (r *OrderStatusAuditRepository) GetByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderStatusAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var audits []domain.OrderStatusAudit
	for i := len(r.audits) - 1; i >= 0; i-- {
		if r.audits[i].OrderID != orderID {
			continue
		}
		audits = append(audits, r.audits[i])
		if limit > 0 && len(audits) == limit {
			break
		}
	}
	return audits, nil
}

func (r *OrderStatusAuditRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.audits = nil
	return nil
}
