package routes

import (
	"tokoku/controllers"
	"tokoku/middleware"
	"tokoku/models"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(router fiber.Router) {
	orders := router.Group("/orders", middleware.DeserializeUser)

	customer := middleware.AllowedRoles(models.RoleCustomer)
	admin := middleware.AllowedRoles(models.RoleAdmin)

	// statics before the :id routes, fiber matches in registration order
	orders.Post("/create/customer", customer, controllers.CreateOrder)
	orders.Get("/list/customer", customer, controllers.GetOrdersByCustomer)
	orders.Get("/list/admin", admin, controllers.GetOrdersByAdmin)

	orders.Post("/:id/add-product/customer", customer, controllers.AddProductToOrder)
	orders.Get("/:id/detail/customer", customer, controllers.GetOrderDetailByCustomer)
	orders.Put("/:id/submit/customer", customer, controllers.SubmitOrder)
	orders.Put("/:id/submit-payment-proof/customer", customer, controllers.SubmitOrderPaymentProof)
	orders.Get("/:id/detail/admin", admin, controllers.GetOrderDetailByAdmin)
}
