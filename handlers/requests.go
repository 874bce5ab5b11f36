package handlers

import (
	"log/slog"
	"strings"

	"delivery-guides-api/models"
)

// GuideRequest is the body of create and update calls, sent either as JSON or
// as a multipart form.
type GuideRequest struct {
	OrderID       models.OptionalID  `json:"order_id" form:"order_id"`
	CustomerName  string             `json:"customer_name" form:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" form:"customer_email"`
	CustomerPhone string             `json:"customer_phone" form:"customer_phone"`
	Address       string             `json:"address" form:"address" binding:"required"`
	City          string             `json:"city" form:"city"`
	PostalCode    string             `json:"postal_code" form:"postal_code"`
	DeliveryDate  string             `json:"delivery_date" form:"delivery_date"`
	DeliveryTime  string             `json:"delivery_time" form:"delivery_time"`
	Status        models.GuideStatus `json:"status" form:"status" binding:"omitempty,oneof=pending in_transit delivered failed"`
	Notes         string             `json:"notes" form:"notes"`
}

// toGuide shapes the request into a record: blank optional fields become
// NULL and the delivery date is normalized to a calendar day. A date that does
// not parse is dropped with a warning rather than rejected.
func (req *GuideRequest) toGuide(log *slog.Logger) *models.DeliveryGuide {
	g := &models.DeliveryGuide{
		OrderID:       req.OrderID.Ptr(),
		CustomerName:  req.CustomerName,
		CustomerEmail: nullable(req.CustomerEmail),
		CustomerPhone: nullable(req.CustomerPhone),
		Address:       req.Address,
		City:          nullable(req.City),
		PostalCode:    nullable(req.PostalCode),
		DeliveryTime:  nullable(req.DeliveryTime),
		Status:        req.Status,
		Notes:         nullable(req.Notes),
	}
	if raw := strings.TrimSpace(req.DeliveryDate); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			log.Warn("ignoring unparseable delivery_date", "delivery_date", raw, "error", err)
		} else {
			g.DeliveryDate = &d
		}
	}
	return g
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
