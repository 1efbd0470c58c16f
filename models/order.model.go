package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
)

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusPaid      OrderStatus = "paid"
)

type Order struct {
	ID               uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Title            string      `gorm:"type:varchar(255);not null" json:"title"`
	Status           OrderStatus `gorm:"type:varchar(50);not null;default:'draft'" json:"status"`
	PaymentProofLink *string     `gorm:"type:varchar(500)" json:"payment_proof_link"`
	Name             string      `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber      string      `gorm:"type:varchar(20);not null" json:"phone_number"`
	Email            string      `gorm:"type:varchar(255);not null" json:"email"`
	Address          string      `gorm:"type:text;not null" json:"address"`
	UserID           uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Carts            []Cart      `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"carts"`
}

// Cart is one line item of an order: a product and a quantity.
type Cart struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateOrderInput struct {
	Title       string `json:"title" validate:"required"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"required"`
}

type AddProductToOrderInput struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}
