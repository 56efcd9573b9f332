package shoppinglist

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

func newService(t *testing.T) ShoppingListService {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"), nil)
	t.Cleanup(st.Close)
	return NewShoppingListService(st)
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestAddEntryStartsUncompleted(t *testing.T) {
	svc := newService(t)

	entry, err := svc.AddEntry(context.Background(), domain.CreateShoppingEntryRequest{
		Name:      "Bread",
		ProductID: raw(`"p-1"`),
	})
	require.NoError(t, err)

	assert.False(t, entry.Completed)
	assert.Equal(t, 1.0, entry.Quantity)
	require.NotNil(t, entry.ProductID)
	assert.Equal(t, "p-1", *entry.ProductID)
}

func TestToggleEntryCompleted(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	entry, err := svc.AddEntry(ctx, domain.CreateShoppingEntryRequest{Name: "Bread"})
	require.NoError(t, err)

	checked, err := svc.UpdateEntry(ctx, entry.ID, domain.UpdateShoppingEntryRequest{
		Completed: raw(`true`),
	})
	require.NoError(t, err)
	assert.True(t, checked.Completed)

	unchecked, err := svc.UpdateEntry(ctx, entry.ID, domain.UpdateShoppingEntryRequest{
		Completed: raw(`0`),
	})
	require.NoError(t, err)
	assert.False(t, unchecked.Completed)
}

func TestUpdateEntryClearsShoppingLocation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	entry, err := svc.AddEntry(ctx, domain.CreateShoppingEntryRequest{
		Name:               "Bread",
		ShoppingLocationID: raw(`"shop-1"`),
	})
	require.NoError(t, err)
	require.NotNil(t, entry.ShoppingLocationID)

	updated, err := svc.UpdateEntry(ctx, entry.ID, domain.UpdateShoppingEntryRequest{
		ShoppingLocationID: raw(`null`),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ShoppingLocationID)
}

func TestDeleteEntryNotFound(t *testing.T) {
	svc := newService(t)

	assert.ErrorIs(t, svc.DeleteEntry(context.Background(), "missing"), domain.ErrRecordNotFound)
}
