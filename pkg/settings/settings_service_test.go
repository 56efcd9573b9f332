package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryOS-Server/domain"
	"PantryOS-Server/entities"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/store"
)

func newService(t *testing.T) (SettingsService, string) {
	t.Helper()
	utils.InitValidator()
	path := filepath.Join(t.TempDir(), "config.json")
	st, err := store.NewSettingsStore(path, entities.Settings{
		Culture:  "en",
		Currency: "USD",
		Timezone: "UTC",
		LogLevel: "info",
	}, nil)
	require.NoError(t, err)
	return NewSettingsService(st, utils.Validate), path
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestUpdateMergesProvidedFields(t *testing.T) {
	svc, _ := newService(t)

	updated, err := svc.Update(domain.UpdateSettingsRequest{
		Currency: raw(`"EUR"`),
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, "en", updated.Culture)
	assert.Equal(t, "UTC", updated.Timezone)
}

func TestUpdateRejectsBlankCurrency(t *testing.T) {
	svc, path := newService(t)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.Update(domain.UpdateSettingsRequest{Currency: raw(`"  "`)})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	// A rejected update leaves both memory and disk untouched.
	assert.Equal(t, "USD", svc.Get().Currency)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateRejectsNullCulture(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(domain.UpdateSettingsRequest{Culture: raw(`null`)})
	assert.ErrorIs(t, err, domain.ErrInvalidCulture)
}

func TestUpdateRejectsBlankTimezone(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(domain.UpdateSettingsRequest{Timezone: raw(`""`)})
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestUpdateLowercasesLogLevel(t *testing.T) {
	svc, _ := newService(t)

	updated, err := svc.Update(domain.UpdateSettingsRequest{LogLevel: raw(`"DEBUG"`)})
	require.NoError(t, err)
	assert.Equal(t, "debug", updated.LogLevel)
}
