package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "vinahous/internal/log"
	"vinahous/internal/repos"
	"vinahous/internal/services"
	"vinahous/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Prods   *repos.ProductStore
}

// List answers GET /api/products. The full filtered set is returned every
// time; there is no pagination.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	search, ok := validate.Query(c.Query("search"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "search"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid search term"})
	}
	q := services.FilterQuery{
		Search:         search,
		Category:       strings.TrimSpace(c.Query("category")),
		HideOutOfStock: c.Query("hideOutOfStock") == "true",
	}
	return c.JSON(h.Catalog.Filter(q))
}

// Get answers GET /api/products/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Prods.GetByID(id)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Stats answers GET /api/stats, computed live from the store.
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Stats())
}
