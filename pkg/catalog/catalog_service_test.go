package catalog

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

func newService(t *testing.T) CatalogService {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "state.json"), nil)
	t.Cleanup(st.Close)
	return NewCatalogService(st)
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestLocationCRUD(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.AddLocation(ctx, domain.CreateLocationRequest{
		Name:      "Freezer",
		IsFreezer: raw(`true`),
	})
	require.NoError(t, err)
	assert.True(t, created.IsFreezer)

	updated, err := svc.UpdateLocation(ctx, created.ID, domain.UpdateLocationRequest{
		IsFreezer: raw(`false`),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsFreezer)
	assert.Equal(t, "Freezer", updated.Name)

	require.NoError(t, svc.DeleteLocation(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteLocation(ctx, created.ID), domain.ErrRecordNotFound)
}

func TestQuantityUnitPluralDefaultsToName(t *testing.T) {
	svc := newService(t)

	unit, err := svc.AddQuantityUnit(context.Background(), domain.CreateQuantityUnitRequest{
		Name: "Piece",
	})
	require.NoError(t, err)
	assert.Equal(t, "Piece", unit.NamePlural)

	custom, err := svc.AddQuantityUnit(context.Background(), domain.CreateQuantityUnitRequest{
		Name:       "Box",
		NamePlural: raw(`"Boxes"`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Boxes", custom.NamePlural)
}

func TestDeletingLocationLeavesReferencesAlone(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	location, err := svc.AddLocation(ctx, domain.CreateLocationRequest{Name: "Pantry"})
	require.NoError(t, err)

	group, err := svc.AddProductGroup(ctx, domain.CreateProductGroupRequest{Name: "Dry goods"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLocation(ctx, location.ID))

	groups, err := svc.GetProductGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, group.ID, groups[0].ID)
}

func TestAddShoppingLocationRequiresName(t *testing.T) {
	svc := newService(t)

	_, err := svc.AddShoppingLocation(context.Background(), domain.CreateShoppingLocationRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}
