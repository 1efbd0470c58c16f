package controllers

import (
	"tokoku/initializers"
	"tokoku/models"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// GetPaymentProofFile returns a payment proof record. Admins read any
// file, customers only their own; either way the stored path must live
// under payment-proof/ so an id uploaded for another purpose cannot be
// substituted here.
func GetPaymentProofFile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.UserResponse)

	fileID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid File ID",
		})
	}

	query := initializers.DB.Where("id = ?", fileID)
	if user.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", user.ID)
	}

	var file models.File
	if err := query.First(&file).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "fail",
				"message": "File Not Found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	if err := file.ValidatePath("payment-proof"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "File Found",
		"data":    file,
	})
}
