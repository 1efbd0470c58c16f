package main

import (
	"fmt"
	"log"

	"tokoku/initializers"
	"tokoku/models"
	"tokoku/seeds"
)

func init() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatal("Could not load environment variables", err)
	}

	initializers.ConnectDB(&config)
}

func main() {
	err := initializers.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Cart{},
		&models.File{},
	)
	if err != nil {
		log.Fatal("Migration Failed: ", err)
	}

	config, _ := initializers.LoadConfig(".")
	if err := seeds.SeedAdminUser(&config); err != nil {
		log.Fatal("Seeding admin user failed: ", err)
	}
	if err := seeds.SeedProducts(); err != nil {
		log.Fatal("Seeding products failed: ", err)
	}

	fmt.Println("Migration complete")
}
