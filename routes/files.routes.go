package routes

import (
	"tokoku/controllers"
	"tokoku/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupFileRoutes(router fiber.Router) {
	files := router.Group("/files", middleware.DeserializeUser)
	files.Get("/:id/payment-proof", controllers.GetPaymentProofFile)
}
