package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

var (
	beefNoodle = domain.MenuItem{ID: "a", Name: "Beef Noodle", Price: 120, Category: "Noodles"}
	tea        = domain.MenuItem{ID: "b", Name: "Tea", Price: 20, Category: "Drinks"}
)

func TestCartAddIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	r := NewCartRepository()

	require.NoError(t, r.AddItem(ctx, "s1", beefNoodle))
	require.NoError(t, r.AddItem(ctx, "s1", beefNoodle))
	require.NoError(t, r.AddItem(ctx, "s1", tea))

	cart, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "Beef Noodle", cart[0].Name)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestCartRemoveLastUnitRemovesLine(t *testing.T) {
	ctx := context.Background()
	r := NewCartRepository()

	require.NoError(t, r.AddItem(ctx, "s1", beefNoodle))
	require.NoError(t, r.AddItem(ctx, "s1", beefNoodle))

	require.NoError(t, r.RemoveItem(ctx, "s1", beefNoodle.ID))
	cart, _ := r.Get(ctx, "s1")
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	require.NoError(t, r.RemoveItem(ctx, "s1", beefNoodle.ID))
	cart, _ = r.Get(ctx, "s1")
	assert.Empty(t, cart)
}

func TestCartRemoveMissingItem(t *testing.T) {
	r := NewCartRepository()

	err := r.RemoveItem(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, repo.ErrItemNotFound)
}

func TestCartSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := NewCartRepository()

	require.NoError(t, r.AddItem(ctx, "s1", beefNoodle))
	require.NoError(t, r.AddItem(ctx, "s2", tea))

	cart1, _ := r.Get(ctx, "s1")
	cart2, _ := r.Get(ctx, "s2")
	require.Len(t, cart1, 1)
	require.Len(t, cart2, 1)
	assert.Equal(t, "Beef Noodle", cart1[0].Name)
	assert.Equal(t, "Tea", cart2[0].Name)

	require.NoError(t, r.Clear(ctx, "s1"))
	cart1, _ = r.Get(ctx, "s1")
	cart2, _ = r.Get(ctx, "s2")
	assert.Empty(t, cart1)
	assert.Len(t, cart2, 1)
}

func TestStorageReset(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Menu.Replace(ctx, domain.Menu{{Name: "Noodles", Items: []domain.MenuItem{beefNoodle}}}))
	require.NoError(t, s.Carts.AddItem(ctx, "s1", beefNoodle))
	require.NoError(t, s.Orders.Create(ctx, &domain.Order{Status: domain.StatusPending}))

	saved := domain.DefaultSettings()
	saved.StoreName = "Changed"
	require.NoError(t, s.Settings.Save(ctx, saved))

	require.NoError(t, s.Reset(ctx))

	menu, _ := s.Menu.Get(ctx)
	assert.Empty(t, menu)
	cart, _ := s.Carts.Get(ctx, "s1")
	assert.Empty(t, cart)
	orders, _ := s.Orders.ListByStatuses(ctx, domain.StatusPending)
	assert.Empty(t, orders)

	// settings survive a reset
	settings, _ := s.Settings.Get(ctx)
	assert.Equal(t, "Changed", settings.StoreName)
}
