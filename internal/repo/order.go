package repo

import (
	"context"
	"errors"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByStatuses(ctx context.Context, statuses ...domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	Clear(ctx context.Context) error
}
