package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "vinahous/internal/log"
	"vinahous/internal/services"
)

// RequireAdmin guards the catalog-mutating endpoints. With no admin password
// configured the guard passes everything through, matching the open admin
// mode of the original deployment.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Enabled() {
			return c.Next()
		}
		sid := c.Cookies("sid")
		if sid == "" || !auth.IsAdmin(sid) {
			applog.Security(c, "access.denied.admin", map[string]any{"path": c.Path()})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin required"})
		}
		return c.Next()
	}
}
