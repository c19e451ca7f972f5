package cart

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kiranakart/kirana-backend/internal/modules/catalog"
)

func newTestService(t *testing.T) (Service, catalog.Service) {
	t.Helper()
	dir := t.TempDir()
	catalogSvc := catalog.NewService(catalog.NewJSONStore(filepath.Join(dir, "products.json")), language.Und)
	cartSvc := NewService(NewJSONStore(filepath.Join(dir, "cart.json")), catalogSvc)
	return cartSvc, catalogSvc
}

func seedProduct(t *testing.T, svc catalog.Service, name, price string) *catalog.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), catalog.ProductRequest{Name: name, Price: price})
	require.NoError(t, err)
	return p
}

func TestService_AddItem(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	cartID := uuid.NewString()

	p := seedProduct(t, catalogSvc, "Tata Salt", "28")

	item, err := cartSvc.AddItem(ctx, cartID, p.ID.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, p.ID, item.ProductID)
	assert.Equal(t, "Tata Salt", item.Name)
	assert.Equal(t, json.Number("28"), item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
}

func TestService_AddItem_MergesExistingProduct(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	cartID := uuid.NewString()

	p := seedProduct(t, catalogSvc, "Ghee", "540")

	first, err := cartSvc.AddItem(ctx, cartID, p.ID.String(), 1)
	require.NoError(t, err)
	second, err := cartSvc.AddItem(ctx, cartID, p.ID.String(), 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same line, not a duplicate")
	assert.Equal(t, 4, second.Quantity)

	items, err := cartSvc.ListItems(ctx, cartID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_AddItem_Validation(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()

	p := seedProduct(t, catalogSvc, "Rice", "80")

	_, err := cartSvc.AddItem(ctx, uuid.NewString(), p.ID.String(), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = cartSvc.AddItem(ctx, "not-a-uuid", p.ID.String(), 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = cartSvc.AddItem(ctx, uuid.NewString(), uuid.NewString(), 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_UpdateQuantity(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	cartID := uuid.NewString()

	p := seedProduct(t, catalogSvc, "Atta", "55")
	item, err := cartSvc.AddItem(ctx, cartID, p.ID.String(), 1)
	require.NoError(t, err)

	updated, err := cartSvc.UpdateQuantity(ctx, cartID, item.ID.String(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = cartSvc.UpdateQuantity(ctx, cartID, item.ID.String(), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = cartSvc.UpdateQuantity(ctx, cartID, uuid.NewString(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_RemoveAndClear(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	cartID := uuid.NewString()

	salt := seedProduct(t, catalogSvc, "Salt", "28")
	oil := seedProduct(t, catalogSvc, "Oil", "180")

	item, err := cartSvc.AddItem(ctx, cartID, salt.ID.String(), 1)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, cartID, oil.ID.String(), 1)
	require.NoError(t, err)

	require.NoError(t, cartSvc.RemoveItem(ctx, cartID, item.ID.String()))
	items, err := cartSvc.ListItems(ctx, cartID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, cartSvc.Clear(ctx, cartID))
	items, err = cartSvc.ListItems(ctx, cartID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_ClearLeavesOtherCartsAlone(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	mine, theirs := uuid.NewString(), uuid.NewString()

	p := seedProduct(t, catalogSvc, "Soap", "45")
	_, err := cartSvc.AddItem(ctx, mine, p.ID.String(), 1)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, theirs, p.ID.String(), 2)
	require.NoError(t, err)

	require.NoError(t, cartSvc.Clear(ctx, mine))

	items, err := cartSvc.ListItems(ctx, theirs)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_CartTotals(t *testing.T) {
	cartSvc, catalogSvc := newTestService(t)
	ctx := context.Background()
	cartID := uuid.NewString()

	salt := seedProduct(t, catalogSvc, "Salt", "28")
	oil := seedProduct(t, catalogSvc, "Oil", "180.50")

	_, err := cartSvc.AddItem(ctx, cartID, salt.ID.String(), 2)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, cartID, oil.ID.String(), 1)
	require.NoError(t, err)

	totals, err := cartSvc.CartTotals(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Items)
	assert.InDelta(t, 236.50, totals.Subtotal, 0.001)
}
