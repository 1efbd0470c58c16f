package seeds

import (
	"fmt"
	"strings"

	"tokoku/initializers"
	"tokoku/models"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser bootstraps the single admin account from config. Safe to
// run repeatedly, an existing account is left alone.
func SeedAdminUser(config *initializers.Config) error {
	if config.AdminEmail == "" {
		return nil
	}

	email := strings.ToLower(config.AdminEmail)

	var existing models.User
	err := initializers.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.NewV4(),
		Name:     config.AdminName,
		Email:    email,
		Password: string(hashedPassword),
	}
	admin.SetAsAdmin()

	if err := initializers.DB.Create(&admin).Error; err != nil {
		return err
	}

	fmt.Println("Seeded admin user", email)
	return nil
}

// SeedProducts loads a demo catalog into an empty products table.
func SeedProducts() error {
	var count int64
	if err := initializers.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{ID: uuid.NewV4(), Name: "Mechanical Keyboard", Price: 750000, Stock: 25, Description: "87-key hot-swappable board"},
		{ID: uuid.NewV4(), Name: "Wireless Mouse", Price: 250000, Stock: 40, Description: "2.4GHz wireless mouse"},
		{ID: uuid.NewV4(), Name: "USB-C Hub", Price: 350000, Stock: 15, Description: "7-in-1 hub with HDMI"},
		{ID: uuid.NewV4(), Name: "Laptop Stand", Price: 180000, Stock: 30, Description: "Adjustable aluminium stand"},
	}

	if err := initializers.DB.Create(&products).Error; err != nil {
		return err
	}

	fmt.Println("Seeded", len(products), "products")
	return nil
}
