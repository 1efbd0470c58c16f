package routes

import (
	"tokoku/controllers"
	"tokoku/middleware"
	"tokoku/models"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(router fiber.Router) {
	products := router.Group("/products", middleware.DeserializeUser)

	products.Get("/", controllers.GetProducts)
	products.Get("/:id", controllers.GetProduct)

	products.Post("/", middleware.AllowedRoles(models.RoleAdmin), controllers.CreateProduct)
	products.Put("/:id", middleware.AllowedRoles(models.RoleAdmin), controllers.UpdateProduct)
	products.Delete("/:id", middleware.AllowedRoles(models.RoleAdmin), controllers.DeleteProduct)
}
