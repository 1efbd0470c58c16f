package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tokoku/initializers"
	"tokoku/models"
	"tokoku/utils"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

var paymentProofMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// InsufficientStockError aborts a submission when one line item asks for
// more than the product has left.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient Stock for Product %s", e.ProductName)
}

func CreateOrder(c *fiber.Ctx) error {
	user := c.Locals("user").(models.UserResponse)

	var payload models.CreateOrderInput
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

	order := models.Order{
		ID:          uuid.NewV4(),
		Title:       payload.Title,
		Status:      models.OrderStatusDraft,
		Name:        payload.Name,
		PhoneNumber: payload.PhoneNumber,
		Email:       payload.Email,
		Address:     payload.Address,
		UserID:      user.ID,
	}

	if err := initializers.DB.Create(&order).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Create Order",
		"data":    order,
	})
}

func AddProductToOrder(c *fiber.Ctx) error {
	user := c.Locals("user").(models.UserResponse)

	orderID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid Order ID",
		})
	}

	var payload models.AddProductToOrderInput
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

	var order models.Order
	if err := initializers.DB.First(&order, "id = ? AND user_id = ?", orderID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "fail",
				"message": "Order Not Found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	var product models.Product
	if err := initializers.DB.First(&product, "id = ?", payload.ProductID).Error; err != nil {
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

	// Stock is deliberately not checked here; it is validated once, at
	// submission time, against the stock available then.
	cart := models.Cart{
		ID:        uuid.NewV4(),
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  payload.Quantity,
	}

	if err := initializers.DB.Create(&cart).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Add Product To Order",
	})
}

// attachCarts loads the cart lines for every order in one query and groups
// them in memory, instead of one lookup per order.
func attachCarts(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	var carts []models.Cart
	if err := initializers.DB.Preload("Product").Where("order_id IN ?", orderIDs).Find(&carts).Error; err != nil {
		return err
	}

	byOrder := make(map[uuid.UUID][]models.Cart, len(orders))
	for _, cart := range carts {
		byOrder[cart.OrderID] = append(byOrder[cart.OrderID], cart)
	}

	for i := range orders {
		orders[i].Carts = byOrder[orders[i].ID]
	}
	return nil
}

func listOrders(c *fiber.Ctx, query *gorm.DB) error {
	var orders []models.Order

	paging, err := utils.Paginate(c, query, &orders)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	if err := attachCarts(orders); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"message":      "All Order Found",
		"total_data":   paging.TotalData,
		"total_page":   paging.TotalPage,
		"current_page": paging.CurrentPage,
		"per_page":     paging.PerPage,
		"data":         orders,
	})
}

func GetOrdersByCustomer(c *fiber.Ctx) error {
	user := c.Locals("user").(models.UserResponse)

	return listOrders(c, initializers.DB.Model(&models.Order{}).
		Where("user_id = ?", user.ID).Order("created_at DESC"))
}

func GetOrdersByAdmin(c *fiber.Ctx) error {
	return listOrders(c, initializers.DB.Model(&models.Order{}).Order("created_at DESC"))
}

func findOrder(c *fiber.Ctx, scopeToUser bool) (*models.Order, error) {
	user := c.Locals("user").(models.UserResponse)

	orderID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Invalid Order ID",
		})
	}

	query := initializers.DB.Where("id = ?", orderID)
	if scopeToUser {
		query = query.Where("user_id = ?", user.ID)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "fail",
				"message": "Order Not Found",
			})
		}
		return nil, c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return &order, nil
}

func detailOrder(c *fiber.Ctx, scopeToUser bool) error {
	order, errResp := findOrder(c, scopeToUser)
	if order == nil {
		return errResp
	}

	if err := initializers.DB.Preload("Product").
		Where("order_id = ?", order.ID).Find(&order.Carts).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Order Found",
		"data":    order,
	})
}

func GetOrderDetailByCustomer(c *fiber.Ctx) error {
	return detailOrder(c, true)
}

func GetOrderDetailByAdmin(c *fiber.Ctx) error {
	return detailOrder(c, false)
}

// SubmitOrder reserves stock for every cart line and moves the order to
// submitted. The conditional decrements and the status change run in one
// transaction: either every line had enough stock and all of it gets
// reserved, or nothing is touched.
func SubmitOrder(c *fiber.Ctx) error {
	order, errResp := findOrder(c, true)
	if order == nil {
		return errResp
	}

	var carts []models.Cart
	if err := initializers.DB.Preload("Product").
		Where("order_id = ?", order.ID).Find(&carts).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		for _, cart := range carts {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", cart.ProductID, cart.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", cart.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return &InsufficientStockError{ProductName: cart.Product.Name}
			}
		}

		order.Status = models.OrderStatusSubmitted
		return tx.Save(order).Error
	})
	if err != nil {
		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "fail",
				"message": stockErr.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	order.Carts = carts
	go func(order models.Order) {
		utils.SendOrderSubmittedEmail(&order)
		utils.PublishOrderEvent(utils.EventOrderSubmitted, &order)
	}(*order)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Submit Order Success",
	})
}

func SubmitOrderPaymentProof(c *fiber.Ctx) error {
	user := c.Locals("user").(models.UserResponse)

	order, errResp := findOrder(c, true)
	if order == nil {
		return errResp
	}

	if order.Status != models.OrderStatusSubmitted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "You Need Submit This Order First before upload payment proof",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "Failed to get payment proof file",
		})
	}

	if !paymentProofMIMETypes[file.Header.Get("Content-Type")] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": fmt.Sprintf("File type %s is not allowed", file.Header.Get("Content-Type")),
		})
	}

	config, _ := initializers.LoadConfig(".")

	fileID := uuid.NewV4()
	relPath := fmt.Sprintf("payment-proof/%s-%s", fileID.String(), filepath.Base(file.Filename))
	savedPath := filepath.Join(config.UploadDir, relPath)

	if err := os.MkdirAll(filepath.Dir(savedPath), os.ModePerm); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to create upload directory",
		})
	}

	if err := c.SaveFile(file, savedPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to save file",
		})
	}

	fileRecord := models.File{
		ID:           fileID,
		MimeType:     file.Header.Get("Content-Type"),
		OriginalName: file.Filename,
		Path:         relPath,
		UserID:       user.ID,
	}

	if err := initializers.DB.Create(&fileRecord).Error; err != nil {
		os.Remove(savedPath)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	// The link is recomputed from the request origin; it is a view-time
	// value, not a stable absolute URL.
	link := fmt.Sprintf("%s/%s", strings.TrimSuffix(c.Get("Origin"), "/"), relPath)
	order.PaymentProofLink = &link

	if err := initializers.DB.Save(order).Error; err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	go func(order models.Order) {
		utils.PublishOrderEvent(utils.EventOrderPaymentProof, &order)
	}(*order)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Submit Payment Proof Order Success",
	})
}
