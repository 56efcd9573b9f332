package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryOS-Server/entities"
	"PantryOS-Server/internal/api/handlers"
	"PantryOS-Server/internal/middleware"
	"PantryOS-Server/internal/utils"
	"PantryOS-Server/pkg/catalog"
	"PantryOS-Server/pkg/chore"
	"PantryOS-Server/pkg/inventory"
	"PantryOS-Server/pkg/overview"
	"PantryOS-Server/pkg/product"
	"PantryOS-Server/pkg/settings"
	"PantryOS-Server/pkg/shoppinglist"
	"PantryOS-Server/pkg/store"
	"PantryOS-Server/pkg/task"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	utils.InitValidator()

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "state.json"), nil)
	t.Cleanup(st.Close)
	cfgStore, err := store.NewSettingsStore(filepath.Join(dir, "config.json"), entities.Settings{
		Culture:  "en",
		Currency: "USD",
		Timezone: "UTC",
		LogLevel: "info",
	}, nil)
	require.NoError(t, err)

	app := fiber.New()
	validator := utils.Validate

	cfg := Config{
		App:             app,
		StateHandler:    handlers.NewStateHandler(overview.NewOverviewService(st, cfgStore)),
		ItemHandler:     handlers.NewItemHandler(inventory.NewInventoryService(st), validator),
		ShoppingHandler: handlers.NewShoppingListHandler(shoppinglist.NewShoppingListService(st), validator),
		TaskHandler:     handlers.NewTaskHandler(task.NewTaskService(st), validator),
		CatalogHandler:  handlers.NewCatalogHandler(catalog.NewCatalogService(st), validator),
		ProductHandler:  handlers.NewProductHandler(product.NewProductService(st), validator),
		ChoreHandler:    handlers.NewChoreHandler(chore.NewChoreService(st), validator),
		SettingsHandler: handlers.NewSettingsHandler(settings.NewSettingsService(cfgStore, validator)),
		Middleware:      middleware.NewMiddleware(),
	}
	cfg.Setup()
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(payload) > 0 && payload[0] == '{' {
		require.NoError(t, json.Unmarshal(payload, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Endpoint non trovato", body["error"])
}

func TestItemLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, http.MethodPost, "/api/items", `{"name":"Milk","quantity":2}`)
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, 2.0, created["quantity"])

	status, patched := doJSON(t, app, http.MethodPatch, "/api/items/"+id, `{"quantity":5}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5.0, patched["quantity"])

	// An empty PATCH body is a no-op, not an error.
	status, same := doJSON(t, app, http.MethodPatch, "/api/items/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5.0, same["quantity"])

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+id, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	status, body := doJSON(t, app, http.MethodDelete, "/api/items/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Prodotto non trovato", body["error"])
}

func TestAddItemWithoutNameFails(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/items", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Il nome del prodotto è obbligatorio", body["error"])
}

func TestProductUpsertEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/products",
		`{"name":"Pasta","stockQuantity":3,"bestBefore":"2027-01-01"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["addedToInventory"])
	productBody, ok := body["product"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Pasta", productBody["name"])

	status, items := doJSON(t, app, http.MethodGet, "/api/items", "")
	assert.Equal(t, http.StatusOK, status)
	_ = items // list bodies decode to nil map, the status check is enough
}

func TestConfigEndpointValidation(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPatch, "/api/config", `{"currency":"  "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `Parametro "currency" non valido`, body["error"])

	status, updated := doJSON(t, app, http.MethodPatch, "/api/config", `{"currency":"EUR"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "EUR", updated["currency"])

	status, current := doJSON(t, app, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "EUR", current["currency"])
}

func TestStateEndpointAggregates(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/items", `{"name":"Milk"}`)
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/tasks", `{"name":"Defrost freezer"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, status)

	summary, ok := body["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1.0, summary["items"])
	assert.Equal(t, 1.0, summary["openTasks"])

	config, ok := body["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "USD", config["currency"])
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, http.MethodPost, "/api/locations", `{"name":"Fridge","isFreezer":false}`)
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	status, body := doJSON(t, app, http.MethodPatch, "/api/locations/missing", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Location non trovata", body["error"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/quantity-units", `{"name":"Piece"}`)
	assert.Equal(t, http.StatusCreated, status)
}
