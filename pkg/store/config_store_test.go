package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryOS-Server/entities"
)

var testDefaults = entities.Settings{
	Culture:  "en",
	Currency: "USD",
	Timezone: "UTC",
	LogLevel: "info",
}

func TestSettingsStoreCreatesFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := NewSettingsStore(path, testDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, testDefaults, s.Get())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"currency": "USD"`)
}

func TestSettingsStoreLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"culture":"it","currency":"EUR"}`), 0o644))

	s, err := NewSettingsStore(path, testDefaults, nil)
	require.NoError(t, err)

	got := s.Get()
	assert.Equal(t, "it", got.Culture)
	assert.Equal(t, "EUR", got.Currency)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "UTC", got.Timezone)
}

func TestSettingsStoreUsesDefaultsOnCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s, err := NewSettingsStore(path, testDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, testDefaults, s.Get())

	// The corrupted file is left untouched until the next update.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw))
}

func TestSettingsStoreUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := NewSettingsStore(path, testDefaults, nil)
	require.NoError(t, err)

	next := testDefaults
	next.Currency = "GBP"
	require.NoError(t, s.Update(next))
	assert.Equal(t, "GBP", s.Get().Currency)

	reopened, err := NewSettingsStore(path, testDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, "GBP", reopened.Get().Currency)
}
