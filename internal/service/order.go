package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/notify"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	actorCustomer = "customer"
	actorCashier  = "cashier"
	actorKitchen  = "kitchen"
)

// OrderService owns the order lifecycle. Every status mutation goes
// through transition, which validates the requested step against the
// fixed table and rejects illegal jumps.
type OrderService struct {
	menuRepo     repo.MenuRepository
	cartRepo     repo.CartRepository
	orderRepo    repo.OrderRepository
	auditRepo    repo.OrderStatusAuditRepository
	settingsRepo repo.SettingsRepository
	dispatcher   notify.Dispatcher
	logger       *zap.SugaredLogger
}

func NewOrderService(
	menuRepo repo.MenuRepository,
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	auditRepo repo.OrderStatusAuditRepository,
	settingsRepo repo.SettingsRepository,
	dispatcher notify.Dispatcher,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		menuRepo:     menuRepo,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		auditRepo:    auditRepo,
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (s *OrderService) AddToCart(ctx context.Context, sessionID, itemID string) error {
	item, err := s.menuRepo.FindItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to find menu item: %w", err)
	}
	if err := s.cartRepo.AddItem(ctx, sessionID, item); err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

func (s *OrderService) RemoveFromCart(ctx context.Context, sessionID, itemID string) error {
	if err := s.cartRepo.RemoveItem(ctx, sessionID, itemID); err != nil {
		return fmt.Errorf("failed to remove item from cart: %w", err)
	}
	return nil
}

func (s *OrderService) Cart(ctx context.Context, sessionID string) ([]domain.CartItem, float64, error) {
	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cart: %w", err)
	}
	return items, domain.CartTotal(items), nil
}

type PlaceOrderInput struct {
	SessionID     string
	TableNumber   string
	CustomerName  string
	ContactLineID string
	ContactEmail  string
}

// PlaceOrder checks out the session cart: the order enters the ledger
// as PENDING with an item snapshot and a total fixed at this moment.
// The simulated notification channels fire once here, before the order
// becomes visible to the cashier and kitchen views; the sync flags
// record which channels actually fired.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	cart, err := s.cartRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = "Table " + input.TableNumber
	}

	items := make([]domain.CartItem, len(cart))
	copy(items, cart)

	order := &domain.Order{
		CustomerName:  customerName,
		TableNumber:   input.TableNumber,
		Items:         items,
		TotalAmount:   domain.CartTotal(items),
		Status:        domain.StatusPending,
		ContactLineID: input.ContactLineID,
		ContactEmail:  input.ContactEmail,
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if err := s.dispatch(ctx, order, settings); err != nil {
		return nil, fmt.Errorf("failed to dispatch order notifications: %w", err)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx, input.SessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.audit(ctx, &domain.OrderStatusAudit{
		OrderID:   order.ID,
		EventType: domain.EventOrderCreated,
		NewStatus: order.Status,
		Actor:     actorCustomer,
	})

	s.logger.Infow("order placed",
		"order_id", order.ID, "table_number", order.TableNumber,
		"total_amount", order.TotalAmount,
		"synced_to_sheet", order.SyncedToSheet, "sent_email", order.SentEmail, "sent_line", order.SentLine)

	return order, nil
}

// dispatch fires the three channels once per order, at creation time.
func (s *OrderService) dispatch(ctx context.Context, order *domain.Order, settings domain.StoreSettings) error {
	sheet, err := s.dispatcher.SyncToSheet(ctx, order, settings)
	if err != nil {
		return err
	}
	order.SyncedToSheet = sheet == notify.StatusSent

	email, err := s.dispatcher.SendEmail(ctx, order, settings)
	if err != nil {
		return err
	}
	order.SentEmail = email == notify.StatusSent

	line, err := s.dispatcher.SendLine(ctx, order, settings)
	if err != nil {
		return err
	}
	order.SentLine = line == notify.StatusSent

	return nil
}

func (s *OrderService) Order(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// PendingOrders is the cashier projection: unpaid orders only, oldest
// first.
func (s *OrderService) PendingOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByStatuses(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	return orders, nil
}

// ActiveOrders is the kitchen projection: paid work in progress. Unpaid
// orders are invisible to the kitchen, served orders are archived.
func (s *OrderService) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByStatuses(ctx, domain.StatusPaid, domain.StatusCooking, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}
	return orders, nil
}

// ConfirmPayment is the cashier action: PENDING -> PAID. Calling it on
// an order in any other state returns the typed transition error.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, domain.StatusPaid, actorCashier)
}

// Advance is the kitchen action: it applies the single legal next
// status. Advancing a SERVED order is a caller error.
func (s *OrderService) Advance(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, &domain.InvalidTransitionError{OrderID: orderID, From: order.Status}
	}

	return s.transition(ctx, orderID, next, actorKitchen)
}

func (s *OrderService) transition(ctx context.Context, orderID string, target domain.OrderStatus, actor string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !domain.CanTransition(order.Status, target) {
		return nil, &domain.InvalidTransitionError{OrderID: orderID, From: order.Status, To: target}
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, target); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.audit(ctx, &domain.OrderStatusAudit{
		OrderID:   orderID,
		EventType: domain.EventOrderStatusChanged,
		OldStatus: order.Status,
		NewStatus: target,
		Actor:     actor,
	})

	s.logger.Infow("order status updated", "order_id", orderID, "old_status", order.Status, "new_status", target, "actor", actor)

	order.Status = target

	if target == domain.StatusCompleted && order.HasContact() {
		if _, err := s.dispatcher.NotifyOrderReady(ctx, order); err != nil {
			s.logger.Errorw("failed to notify customer", "order_id", orderID, "error", err)
		}
	}

	return order, nil
}

func (s *OrderService) AuditTrail(ctx context.Context, orderID string, limit int) ([]domain.OrderStatusAudit, error) {
	audits, err := s.auditRepo.GetByOrderID(ctx, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order audit: %w", err)
	}
	return audits, nil
}

func (s *OrderService) audit(ctx context.Context, record *domain.OrderStatusAudit) {
	if err := s.auditRepo.Create(ctx, record); err != nil {
		s.logger.Errorw("failed to create audit record", "order_id", record.OrderID, "error", err)
	}
}
