package routes

import "github.com/gofiber/fiber/v2"

func SetupRoutes(router fiber.Router) {
	SetupAuthRoutes(router)
	SetupProductRoutes(router)
	SetupOrderRoutes(router)
	SetupFileRoutes(router)
}
