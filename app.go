package main

import (
	"log"
	"path/filepath"

	"tokoku/initializers"
	"tokoku/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func init() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatal("Could not load environment variables", err)
	}

	initializers.ConnectDB(&config)
	initializers.ConnectRedis(&config)
	initializers.ConnectRabbit(&config)
}

func main() {
	config, _ := initializers.LoadConfig(".")

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ClientOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))

	app.Static("/payment-proof", filepath.Join(config.UploadDir, "payment-proof"))

	micro := app.Group("/api")
	routes.SetupRoutes(micro)

	routes.NotFoundRoute(app)

	log.Fatal(app.Listen(":" + config.ServerPort))
}
