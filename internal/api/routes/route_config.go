package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"PantryOS-Server/domain"
	"PantryOS-Server/internal/api/handlers"
	"PantryOS-Server/internal/api/presenters"
	"PantryOS-Server/internal/metrics"
	"PantryOS-Server/internal/middleware"
)

type Config struct {
	App             *fiber.App
	StateHandler    handlers.StateHandler
	ItemHandler     handlers.ItemHandler
	ShoppingHandler handlers.ShoppingListHandler
	TaskHandler     handlers.TaskHandler
	CatalogHandler  handlers.CatalogHandler
	ProductHandler  handlers.ProductHandler
	ChoreHandler    handlers.ChoreHandler
	SettingsHandler handlers.SettingsHandler
	Middleware      middleware.Middleware
	Metrics         *metrics.HTTPMetrics
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	if c.Metrics != nil {
		c.App.Use(c.Metrics.Middleware())
		c.App.Get("/metrics", adaptor.HTTPHandler(metrics.GetPrometheusHandler()))
	}
	c.Overview()
	c.Items()
	c.ShoppingList()
	c.Tasks()
	c.Catalog()
	c.Products()
	c.Chores()
	c.Settings()
	c.Fallback()
}

func (c *Config) Overview() {
	c.App.Get("/api/health", c.StateHandler.GetHealth)
	c.App.Get("/api/state", c.StateHandler.GetState)
}

func (c *Config) Items() {
	items := c.App.Group("/api/items")
	{
		items.Get("", c.ItemHandler.GetItems)
		items.Post("", c.ItemHandler.AddItem)
		items.Patch("/:id", c.ItemHandler.UpdateItem)
		items.Delete("/:id", c.ItemHandler.DeleteItem)
	}
}

func (c *Config) ShoppingList() {
	list := c.App.Group("/api/shopping-list")
	{
		list.Get("", c.ShoppingHandler.GetEntries)
		list.Post("", c.ShoppingHandler.AddEntry)
		list.Patch("/:id", c.ShoppingHandler.UpdateEntry)
		list.Delete("/:id", c.ShoppingHandler.DeleteEntry)
	}
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/tasks")
	{
		tasks.Get("", c.TaskHandler.GetTasks)
		tasks.Post("", c.TaskHandler.AddTask)
		tasks.Patch("/:id", c.TaskHandler.UpdateTask)
		tasks.Delete("/:id", c.TaskHandler.DeleteTask)
	}
}

func (c *Config) Catalog() {
	locations := c.App.Group("/api/locations")
	{
		locations.Get("", c.CatalogHandler.GetLocations)
		locations.Post("", c.CatalogHandler.AddLocation)
		locations.Patch("/:id", c.CatalogHandler.UpdateLocation)
		locations.Delete("/:id", c.CatalogHandler.DeleteLocation)
	}

	groups := c.App.Group("/api/product-groups")
	{
		groups.Get("", c.CatalogHandler.GetProductGroups)
		groups.Post("", c.CatalogHandler.AddProductGroup)
		groups.Patch("/:id", c.CatalogHandler.UpdateProductGroup)
		groups.Delete("/:id", c.CatalogHandler.DeleteProductGroup)
	}

	units := c.App.Group("/api/quantity-units")
	{
		units.Get("", c.CatalogHandler.GetQuantityUnits)
		units.Post("", c.CatalogHandler.AddQuantityUnit)
		units.Patch("/:id", c.CatalogHandler.UpdateQuantityUnit)
		units.Delete("/:id", c.CatalogHandler.DeleteQuantityUnit)
	}

	shops := c.App.Group("/api/shopping-locations")
	{
		shops.Get("", c.CatalogHandler.GetShoppingLocations)
		shops.Post("", c.CatalogHandler.AddShoppingLocation)
		shops.Patch("/:id", c.CatalogHandler.UpdateShoppingLocation)
		shops.Delete("/:id", c.CatalogHandler.DeleteShoppingLocation)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/products")
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Post("", c.ProductHandler.UpsertProduct)
		products.Patch("/:id", c.ProductHandler.UpdateProduct)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
	}

	barcodes := c.App.Group("/api/barcodes")
	{
		barcodes.Get("", c.ProductHandler.GetBarcodes)
		barcodes.Post("", c.ProductHandler.AddBarcode)
	}
}

func (c *Config) Chores() {
	chores := c.App.Group("/api/chores")
	{
		chores.Get("", c.ChoreHandler.GetChores)
		chores.Post("", c.ChoreHandler.AddChore)
		chores.Patch("/:id", c.ChoreHandler.UpdateChore)
		chores.Delete("/:id", c.ChoreHandler.DeleteChore)
	}
}

func (c *Config) Settings() {
	c.App.Get("/api/config", c.SettingsHandler.GetSettings)
	c.App.Patch("/api/config", c.SettingsHandler.UpdateSettings)
}

// Fallback answers every unmatched /api route with a JSON 404 so clients
// never see fiber's plain-text default.
func (c *Config) Fallback() {
	c.App.Use("/api", func(ctx *fiber.Ctx) error {
		return presenters.ErrorResponse(ctx, fiber.StatusNotFound, domain.MessageEndpointNotFound)
	})
}
