package models

import "time"

// GuideStatus represents all possible states of a delivery guide
type GuideStatus string

const (
	GuidePending   GuideStatus = "pending"
	GuideInTransit GuideStatus = "in_transit"
	GuideDelivered GuideStatus = "delivered"
	GuideFailed    GuideStatus = "failed"
)

// DeliveryGuide is a shipment record. OrderID is optional; when set, deleting
// the order deletes the guide.
type DeliveryGuide struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	OrderID       *uint       `json:"order_id" gorm:"index"`
	Order         *Order      `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CustomerName  string      `json:"customer_name" gorm:"size:255;not null;index:idx_guides_customer_name"`
	CustomerEmail *string     `json:"customer_email" gorm:"size:255"`
	CustomerPhone *string     `json:"customer_phone" gorm:"size:20"`
	Address       string      `json:"address" gorm:"type:text;not null"`
	City          *string     `json:"city" gorm:"size:100"`
	PostalCode    *string     `json:"postal_code" gorm:"size:10"`
	DeliveryDate  *Date       `json:"delivery_date"`
	DeliveryTime  *string     `json:"delivery_time" gorm:"size:8"`
	Status        GuideStatus `json:"status" gorm:"size:20;not null;default:'pending';index:idx_guides_status"`
	Notes         *string     `json:"notes" gorm:"type:text"`
	ReceiptPath   *string     `json:"receipt_path" gorm:"size:255"`
	CreatedAt     time.Time   `json:"created_at" gorm:"index:idx_guides_created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
