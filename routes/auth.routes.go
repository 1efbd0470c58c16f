package routes

import (
	"tokoku/controllers"
	"tokoku/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", controllers.SignUpUser)
	auth.Post("/login", controllers.SignInUser)
	auth.Get("/logout", middleware.DeserializeUser, controllers.LogoutUser)

	users := router.Group("/users")
	users.Get("/me", middleware.DeserializeUser, controllers.GetMe)
}
