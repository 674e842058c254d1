package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "vinahous/internal/log"
	"vinahous/internal/repos"
	"vinahous/internal/services"
	"vinahous/internal/validate"
)

type CartHandler struct {
	Cart   *services.CartService
	Export *services.ExportService
}

// View answers GET /api/cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	view, err := h.Cart.View(ensureSID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Add answers POST /api/cart/items {productId}.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var body struct {
		ProductID json.Number `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID.String())
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid productId"})
	}
	view, err := h.Cart.Add(ensureSID(c), id)
	switch {
	case errors.Is(err, repos.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, services.ErrOutOfStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "product out of stock"})
	case errors.Is(err, services.ErrUnpriced):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "product has no price"})
	case err != nil:
		return err
	}
	return c.JSON(view)
}

// UpdateQuantity answers PUT /api/cart/items/:id {quantity}. A quantity of
// zero or less removes the line; non-numeric input is a validation error.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var body struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	// The quantity arrives as a number from the page script and as a quoted
	// string from the raw input field; accept both.
	qty, ok := validate.Quantity(strings.Trim(string(body.Quantity), `"`))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid quantity"})
	}
	view, err := h.Cart.UpdateQuantity(ensureSID(c), id, qty)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Remove answers DELETE /api/cart/items/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	view, err := h.Cart.Remove(ensureSID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Clear answers DELETE /api/cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Clear(sid); err != nil {
		return err
	}
	view, err := h.Cart.View(sid)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// ExportOrder answers POST /api/cart/export. When the transfer target takes
// the summary the response is JSON; when it fails, the summary is presented
// directly as the order page so the text is never lost. The cart is cleared
// on both paths.
func (h *CartHandler) ExportOrder(c *fiber.Ctx) error {
	res, err := h.Export.Export(ensureSID(c))
	if errors.Is(err, services.ErrEmptyCart) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	}
	if err != nil {
		return err
	}
	if !res.Delivered {
		applog.Warn(c, "export.transfer.fail", map[string]any{"reference": res.Reference})
		return c.Render("order", fiber.Map{"Reference": res.Reference, "Text": res.Text})
	}
	applog.Info(c, "export.done", map[string]any{"reference": res.Reference})
	return c.JSON(res)
}
