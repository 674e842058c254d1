package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"vinahous/internal/config"
	"vinahous/internal/repos"
	"vinahous/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	AdminHandler   *AdminHandler
	CartHandler    *CartHandler
}

func NewDeps(db *sqlx.DB, store *repos.ProductStore, cfg config.Config, auth *services.AuthService) *Deps {
	cartRepo := repos.NewCartStore(db)

	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService(cartRepo, store)
	exportSvc := services.NewExportService(cartSvc, services.FileTransfer{Dir: cfg.ExportDir})

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Prods: store},
		AdminHandler:   &AdminHandler{Prods: store, Auth: auth},
		CartHandler:    &CartHandler{Cart: cartSvc, Export: exportSvc},
	}
}

// Register mounts the API under /api. Shared between main and the tests so
// route wiring cannot drift.
func (d *Deps) Register(app *fiber.App, auth *services.AuthService) {
	api := app.Group("/api")

	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Get("/stats", d.ProductHandler.Stats)

	admin := RequireAdmin(auth)
	api.Put("/products/:id/toggle-stock", admin, d.AdminHandler.ToggleStock)
	api.Post("/products/:id/toggle-stock", admin, d.AdminHandler.ToggleStock)
	api.Put("/products/:id/update", admin, d.AdminHandler.Update)
	api.Post("/admin/login", d.AdminHandler.Login)

	api.Get("/cart", d.CartHandler.View)
	api.Post("/cart/items", d.CartHandler.Add)
	api.Put("/cart/items/:id", d.CartHandler.UpdateQuantity)
	api.Delete("/cart/items/:id", d.CartHandler.Remove)
	api.Delete("/cart", d.CartHandler.Clear)
	api.Post("/cart/export", d.CartHandler.ExportOrder)
}
