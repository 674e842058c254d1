package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vinahous/internal/domain"
	applog "vinahous/internal/log"
	"vinahous/internal/repos"
	"vinahous/internal/services"
	"vinahous/internal/validate"
)

type AdminHandler struct {
	Prods *repos.ProductStore
	Auth  *services.AuthService
}

// Login answers POST /api/admin/login and marks the session as admin.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || !validate.Password(body.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing password"})
	}
	sid := ensureSID(c)
	if err := h.Auth.Login(sid, body.Password); err != nil {
		applog.Security(c, "admin.login.fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid password"})
	}
	applog.Audit(c, "admin.login", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// ToggleStock answers PUT|POST /api/products/:id/toggle-stock.
func (h *AdminHandler) ToggleStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Prods.ToggleStock(id)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "product.stock.toggle", map[string]any{"id": id, "hetHang": p.HetHang})
	return c.JSON(p)
}

// Update answers PUT /api/products/:id/update. The body is restricted to the
// allow-listed fields; anything else in it is silently dropped by decoding
// into the patch type, so id and category cannot be rewritten here.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if patch.TenSanPham != nil && strings.TrimSpace(*patch.TenSanPham) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	p, err := h.Prods.UpdateFields(id, patch)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return c.JSON(p)
}
