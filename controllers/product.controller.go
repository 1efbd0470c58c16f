package controllers

import (
	"tokoku/initializers"
	"tokoku/models"
	"tokoku/utils"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

func CreateProduct(c *fiber.Ctx) error {
	var payload models.CreateProductInput

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	if errors := models.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	product := models.Product{
		ID:          uuid.NewV4(),
		Name:        payload.Name,
		Price:       payload.Price,
		Stock:       payload.Stock,
		Description: payload.Description,
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Create Product",
		"data":    product,
	})
}

func GetProducts(c *fiber.Ctx) error {
	var products []models.Product

	paging, err := utils.Paginate(c, initializers.DB.Model(&models.Product{}).Order("created_at DESC"), &products)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"message":      "All Product Found",
		"total_data":   paging.TotalData,
		"total_page":   paging.TotalPage,
		"current_page": paging.CurrentPage,
		"per_page":     paging.PerPage,
		"data":         products,
	})
}

func GetProduct(c *fiber.Ctx) error {
	productID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid Product ID",
		})
	}

	var product models.Product
	if err := initializers.DB.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "fail",
				"message": "Product Not Found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Product Found",
		"data":    product,
	})
}

// UpdateProduct applies a partial update; absent fields stay untouched.
// Last write wins, the per-row conditional decrement in SubmitOrder is the
// only stock write that guards against going negative.
func UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid Product ID",
		})
	}

	var payload models.UpdateProductInput
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	if errors := models.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "fail",
			"errors": errors,
		})
	}

	var product models.Product
	if err := initializers.DB.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "fail",
				"message": "Product Not Found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	updates := make(map[string]interface{})
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Price != nil {
		updates["price"] = *payload.Price
	}
	if payload.Stock != nil {
		updates["stock"] = *payload.Stock
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&product).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Update Product",
		"data":    product,
	})
}

func DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid Product ID",
		})
	}

	result := initializers.DB.Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "fail",
			"message": "Product Not Found",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Delete Product",
	})
}
