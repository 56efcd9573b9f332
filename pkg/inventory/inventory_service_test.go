package inventory

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryOS-Server/domain"
	"PantryOS-Server/pkg/store"
)

func newService(t *testing.T) InventoryService {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"), nil)
	t.Cleanup(st.Close)
	return NewInventoryService(st)
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestAddItemDefaults(t *testing.T) {
	svc := newService(t)

	item, err := svc.AddItem(context.Background(), domain.CreateItemRequest{Name: "  Milk  "})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 1.0, item.Quantity)
	assert.Equal(t, "", item.Location)
	assert.Nil(t, item.BestBefore)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestAddItemRequiresName(t *testing.T) {
	svc := newService(t)

	_, err := svc.AddItem(context.Background(), domain.CreateItemRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestAddItemClampsQuantity(t *testing.T) {
	svc := newService(t)

	item, err := svc.AddItem(context.Background(), domain.CreateItemRequest{
		Name:     "Eggs",
		Quantity: raw(`-3`),
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, item.Quantity)
}

func TestUpdateItemPatchesOnlyProvidedFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, domain.CreateItemRequest{
		Name:     "Milk",
		Quantity: raw(`2`),
		Location: raw(`"Fridge"`),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		Quantity: raw(`5`),
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Quantity)
	assert.Equal(t, "Milk", updated.Name)
	assert.Equal(t, "Fridge", updated.Location)
}

func TestUpdateItemKeepsValueOnBadNumber(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, domain.CreateItemRequest{Name: "Milk", Quantity: raw(`2`)})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		Quantity: raw(`"abc"`),
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Quantity)
}

func TestUpdateItemBlankNameKeepsOldName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, domain.CreateItemRequest{Name: "Milk"})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		Name: raw(`"   "`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Milk", updated.Name)
}

func TestUpdateItemClearsBestBeforeWithNull(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, domain.CreateItemRequest{
		Name:       "Milk",
		BestBefore: raw(`"2026-12-01"`),
	})
	require.NoError(t, err)
	require.NotNil(t, created.BestBefore)

	updated, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		BestBefore: raw(`null`),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.BestBefore)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.UpdateItem(context.Background(), "missing", domain.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestDeleteItem(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, domain.CreateItemRequest{Name: "Milk"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, created.ID))

	items, err := svc.GetItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, svc.DeleteItem(ctx, created.ID), domain.ErrRecordNotFound)
}
