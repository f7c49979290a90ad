// Package memory holds every repository behind the in-memory session
// store. The whole system is single-session and process-lifetime: there
// is no persistence across restarts, only discrete operations applied
// in the order received.
package memory

import "context"

type Storage struct {
	Menu     *MenuRepository
	Carts    *CartRepository
	Orders   *OrderRepository
	Audit    *OrderStatusAuditRepository
	Settings *SettingsRepository
}

func New() *Storage {
	return &Storage{
		Menu:     NewMenuRepository(),
		Carts:    NewCartRepository(),
		Orders:   NewOrderRepository(),
		Audit:    NewOrderStatusAuditRepository(),
		Settings: NewSettingsRepository(),
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Reset wipes menu, carts, orders and audit trail. Settings survive a
// reset on purpose: the owner keeps their configuration.
func (s *Storage) Reset(ctx context.Context) error {
	if err := s.Menu.Clear(ctx); err != nil {
		return err
	}
	if err := s.Carts.ClearAll(ctx); err != nil {
		return err
	}
	if err := s.Orders.Clear(ctx); err != nil {
		return err
	}
	return s.Audit.Clear(ctx)
}
