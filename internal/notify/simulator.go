package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
)

// Simulator stands in for the real integrations. Delivery always
// succeeds; the artificial delay represents network latency and the
// caller blocks on it before the order becomes visible.
type Simulator struct {
	delay  time.Duration
	logger *zap.SugaredLogger
}

func NewSimulator(delay time.Duration, logger *zap.SugaredLogger) *Simulator {
	return &Simulator{
		delay:  delay,
		logger: logger,
	}
}

func (s *Simulator) SyncToSheet(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error) {
	if !settings.EnableSheetSync || settings.GoogleScriptURL == "" {
		return StatusSkipped, nil
	}
	if err := s.simulateDelivery(ctx); err != nil {
		return StatusFailed, err
	}
	s.logger.Infow("[simulation] posting order to Google Script", "order_id", order.ID, "url", settings.GoogleScriptURL)
	return StatusSent, nil
}

func (s *Simulator) SendEmail(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error) {
	if !settings.EnableEmailNotify || settings.OwnerEmail == "" {
		return StatusSkipped, nil
	}
	if err := s.simulateDelivery(ctx); err != nil {
		return StatusFailed, err
	}
	s.logger.Infow("[simulation] sending notification email to owner", "order_id", order.ID, "email", settings.OwnerEmail)
	return StatusSent, nil
}

func (s *Simulator) SendLine(ctx context.Context, order *domain.Order, settings domain.StoreSettings) (Status, error) {
	if !settings.EnableLineNotify || settings.LineToken == "" {
		return StatusSkipped, nil
	}
	if err := s.simulateDelivery(ctx); err != nil {
		return StatusFailed, err
	}
	s.logger.Infow("[simulation] sending Line Notify message", "order_id", order.ID)
	return StatusSent, nil
}

func (s *Simulator) NotifyOrderReady(ctx context.Context, order *domain.Order) (Status, error) {
	if !order.HasContact() {
		return StatusSkipped, nil
	}
	s.logger.Infow("[simulation] notifying customer that order is ready",
		"order_id", order.ID, "table_number", order.TableNumber,
		"line_id", order.ContactLineID, "email", order.ContactEmail)
	return StatusSent, nil
}

func (s *Simulator) simulateDelivery(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
