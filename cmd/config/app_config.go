package config

import (
	"os"
	"time"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/handlers"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/internal/api/routes"
	"PantryOS-Server/internal/metrics"
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

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp builds the fiber application around the two stores. Every route,
// middleware, and service is wired here, mirroring the dependency order:
// stores -> services -> handlers -> routes.
func NewApp(st *store.Store, cfgStore *store.SettingsStore) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			if code == fiber.StatusNotFound {
				return presenters.ErrorResponse(c, code, domain.MessageEndpointNotFound)
			}
			return presenters.ErrorResponse(c, code, domain.MessageFailedStoreFailure)
		},
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
	}))

	httpMetrics := metrics.NewHTTPMetrics("pantryos-server")

	// Service
	inventoryService := inventory.NewInventoryService(st)
	shoppingListService := shoppinglist.NewShoppingListService(st)
	taskService := task.NewTaskService(st)
	catalogService := catalog.NewCatalogService(st)
	productService := product.NewProductService(st)
	choreService := chore.NewChoreService(st)
	settingsService := settings.NewSettingsService(cfgStore, validator)
	overviewService := overview.NewOverviewService(st, cfgStore)

	// Handler
	itemHandler := handlers.NewItemHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	choreHandler := handlers.NewChoreHandler(choreService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	stateHandler := handlers.NewStateHandler(overviewService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		StateHandler:    stateHandler,
		ItemHandler:     itemHandler,
		ShoppingHandler: shoppingHandler,
		TaskHandler:     taskHandler,
		CatalogHandler:  catalogHandler,
		ProductHandler:  productHandler,
		ChoreHandler:    choreHandler,
		SettingsHandler: settingsHandler,
		Middleware:      middlewares,
		Metrics:         httpMetrics,
	}
	routesConfig.Setup()
	return app, nil
}
