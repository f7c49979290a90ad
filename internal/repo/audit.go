package repo

import (
	"context"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

type OrderStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderStatusAudit) error
	GetByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderStatusAudit, error)
	Clear(ctx context.Context) error
}
