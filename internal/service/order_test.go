package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/notify"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/store/memory"
)

var testMenu = domain.Menu{
	{Name: "Noodles", Items: []domain.MenuItem{
		{ID: "beef", Name: "Beef Noodle", Price: 120, Category: "Noodles", Recommended: true},
	}},
	{Name: "Drinks", Items: []domain.MenuItem{
		{ID: "tea", Name: "Tea", Price: 20, Category: "Drinks"},
	}},
}

func newTestOrderService(t *testing.T) (*OrderService, *memory.Storage) {
	t.Helper()
	svc, storage, _ := newSpiedOrderService(t)
	return svc, storage
}

// readySpy counts ready notifications on top of the simulator's channel
// behavior.
type readySpy struct {
	*notify.Simulator
	readyOrders []string
}

func (s *readySpy) NotifyOrderReady(ctx context.Context, order *domain.Order) (notify.Status, error) {
	s.readyOrders = append(s.readyOrders, order.ID)
	return s.Simulator.NotifyOrderReady(ctx, order)
}

func newSpiedOrderService(t *testing.T) (*OrderService, *memory.Storage, *readySpy) {
	t.Helper()

	storage := memory.New()
	require.NoError(t, storage.Menu.Replace(context.Background(), testMenu))

	logger := zap.NewNop().Sugar()
	dispatcher := &readySpy{Simulator: notify.NewSimulator(0, logger)}

	svc := NewOrderService(
		storage.Menu,
		storage.Carts,
		storage.Orders,
		storage.Audit,
		storage.Settings,
		dispatcher,
		logger,
	)
	return svc, storage, dispatcher
}

func placeTestOrder(t *testing.T, svc *OrderService) *domain.Order {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "s1", "beef"))
	require.NoError(t, svc.AddToCart(ctx, "s1", "beef"))
	require.NoError(t, svc.AddToCart(ctx, "s1", "tea"))

	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{SessionID: "s1", TableNumber: "5"})
	require.NoError(t, err)
	return order
}

func TestPlaceOrder(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 260.0, order.TotalAmount)
	assert.Equal(t, "5", order.TableNumber)
	assert.Equal(t, "Table 5", order.CustomerName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.Timestamp.IsZero())

	// checkout clears the session cart
	cart, total, err := svc.Cart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.Equal(t, 0.0, total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{SessionID: "empty", TableNumber: "1"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	svc, _ := newTestOrderService(t)

	err := svc.AddToCart(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, repo.ErrItemNotFound)
}

func TestTotalAmountIsASnapshot(t *testing.T) {
	svc, storage := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)
	require.Equal(t, 260.0, order.TotalAmount)

	// re-import the menu with doubled prices; the placed order keeps its
	// total
	expensive := domain.Menu{
		{Name: "Noodles", Items: []domain.MenuItem{
			{ID: "beef", Name: "Beef Noodle", Price: 240, Category: "Noodles"},
		}},
		{Name: "Drinks", Items: []domain.MenuItem{
			{ID: "tea", Name: "Tea", Price: 40, Category: "Drinks"},
		}},
	}
	require.NoError(t, storage.Menu.Replace(ctx, expensive))

	stored, err := svc.Order(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 260.0, stored.TotalAmount)
	assert.Equal(t, 120.0, stored.Items[0].Price)
}

func TestNotificationFlagsFollowChannelPolicy(t *testing.T) {
	tests := []struct {
		name      string
		settings  domain.StoreSettings
		wantSheet bool
		wantEmail bool
		wantLine  bool
	}{
		{
			name: "all channels off by default",
		},
		{
			name: "enabled and configured channels fire",
			settings: domain.StoreSettings{
				EnableSheetSync: true, GoogleScriptURL: "https://script.google.com/x",
				EnableEmailNotify: true, OwnerEmail: "owner@example.com",
				EnableLineNotify: true, LineToken: "token",
			},
			wantSheet: true, wantEmail: true, wantLine: true,
		},
		{
			name: "enabled without endpoint stays unsent",
			settings: domain.StoreSettings{
				EnableSheetSync: true, EnableEmailNotify: true, EnableLineNotify: true,
			},
		},
		{
			name: "configured without toggle stays unsent",
			settings: domain.StoreSettings{
				GoogleScriptURL: "https://script.google.com/x",
				OwnerEmail:      "owner@example.com",
				LineToken:       "token",
			},
		},
		{
			name: "mixed",
			settings: domain.StoreSettings{
				EnableSheetSync: true, GoogleScriptURL: "https://script.google.com/x",
				EnableEmailNotify: true,
				LineToken:         "token",
			},
			wantSheet: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, storage := newTestOrderService(t)
			ctx := context.Background()

			settings := tc.settings
			settings.Username = "Store"
			settings.Password = "12345678"
			require.NoError(t, storage.Settings.Save(ctx, settings))

			order := placeTestOrder(t, svc)
			assert.Equal(t, tc.wantSheet, order.SyncedToSheet)
			assert.Equal(t, tc.wantEmail, order.SentEmail)
			assert.Equal(t, tc.wantLine, order.SentLine)
		})
	}
}

func TestProjectionsAndLifecycleScenario(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)

	// cashier sees the pending order, kitchen does not
	pending, err := svc.PendingOrders(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, order.ID, pending[0].ID)

	active, err := svc.ActiveOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// payment moves it from the cashier queue to the kitchen queue
	paid, err := svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)

	pending, _ = svc.PendingOrders(ctx)
	assert.Empty(t, pending)
	active, _ = svc.ActiveOrders(ctx)
	require.Len(t, active, 1)

	// kitchen advances through COOKING and COMPLETED, still active
	cooking, err := svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCooking, cooking.Status)

	completed, err := svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)

	active, _ = svc.ActiveOrders(ctx)
	require.Len(t, active, 1)

	// the third advance serves the order and archives it
	served, err := svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusServed, served.Status)

	active, _ = svc.ActiveOrders(ctx)
	assert.Empty(t, active)
	pending, _ = svc.PendingOrders(ctx)
	assert.Empty(t, pending)
}

func TestConfirmPaymentRejectsNonPending(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)

	_, err := svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, order.ID)
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusPaid, invalid.From)
	assert.Equal(t, domain.StatusPaid, invalid.To)
}

func TestAdvanceRejectsTerminalOrder(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)

	_, err := svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.Advance(ctx, order.ID)
		require.NoError(t, err)
	}

	_, err = svc.Advance(ctx, order.ID)
	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusServed, invalid.From)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	svc, _ := newTestOrderService(t)

	_, err := svc.Advance(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrOrderNotFound)

	_, err = svc.ConfirmPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrOrderNotFound)
}

func TestPendingOrdersSortedOldestFirst(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.AddToCart(ctx, "s1", "tea"))
		_, err := svc.PlaceOrder(ctx, PlaceOrderInput{SessionID: "s1", TableNumber: "1"})
		require.NoError(t, err)
	}

	pending, err := svc.PendingOrders(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for i := 1; i < len(pending); i++ {
		assert.True(t, pending[i-1].ID < pending[i].ID)
		assert.False(t, pending[i].Timestamp.Before(pending[i-1].Timestamp))
	}
}

func TestAuditTrailRecordsEveryTransition(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)
	_, err := svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)
	_, err = svc.Advance(ctx, order.ID)
	require.NoError(t, err)

	audits, err := svc.AuditTrail(ctx, order.ID, 0)
	require.NoError(t, err)
	require.Len(t, audits, 3)

	// newest first
	assert.Equal(t, domain.EventOrderStatusChanged, audits[0].EventType)
	assert.Equal(t, domain.StatusCooking, audits[0].NewStatus)
	assert.Equal(t, "kitchen", audits[0].Actor)

	assert.Equal(t, domain.StatusPaid, audits[1].NewStatus)
	assert.Equal(t, "cashier", audits[1].Actor)

	assert.Equal(t, domain.EventOrderCreated, audits[2].EventType)
	assert.Equal(t, domain.StatusPending, audits[2].NewStatus)
	assert.Equal(t, "customer", audits[2].Actor)
}

func TestReadySignalFiresOnCompletedWithContact(t *testing.T) {
	svc, _, spy := newSpiedOrderService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "s1", "tea"))
	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{
		SessionID:     "s1",
		TableNumber:   "3",
		ContactLineID: "line-id",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, spy.readyOrders)

	// COOKING does not signal yet
	_, err = svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, spy.readyOrders)

	// COMPLETED signals exactly once
	_, err = svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{order.ID}, spy.readyOrders)

	// SERVED does not signal again
	_, err = svc.Advance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{order.ID}, spy.readyOrders)
}

func TestReadySignalSkippedWithoutContact(t *testing.T) {
	svc, _, spy := newSpiedOrderService(t)
	ctx := context.Background()

	order := placeTestOrder(t, svc)

	_, err := svc.ConfirmPayment(ctx, order.ID)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.Advance(ctx, order.ID)
		require.NoError(t, err)
	}

	assert.Empty(t, spy.readyOrders)
}

func TestCustomerNamePassedThrough(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "s1", "tea"))
	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{
		SessionID:     "s1",
		TableNumber:   "7",
		CustomerName:  "Amy",
		ContactLineID: "amy-line",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amy", order.CustomerName)
	assert.Equal(t, "amy-line", order.ContactLineID)
	assert.True(t, order.HasContact())
}
