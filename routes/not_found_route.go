package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotFoundRoute func for describe 404 Error route.

func NotFoundRoute(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		// Static uploads are served by their own handler
		if strings.HasPrefix(c.Path(), "/payment-proof/") {
			return c.Next()
		}

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true,
			"msg":   "sorry, endpoint is not found",
		})
	})
}
