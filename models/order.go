package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the states of a purchase order. Orders are owned by
// another system; delivery guides only reference them.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CustomerName  string          `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail *string         `json:"customer_email" gorm:"size:255"`
	CustomerPhone *string         `json:"customer_phone" gorm:"size:20"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus     `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
